package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops-api/internal/diff"
)

func TestCompute_NilRecords(t *testing.T) {
	specs := []diff.FieldSpec{diff.Key("name")}

	assert.Empty(t, diff.Compute(nil, diff.Record{"name": "x"}, specs))
	assert.Empty(t, diff.Compute(diff.Record{"name": "x"}, nil, specs))
	assert.Empty(t, diff.Compute(nil, nil, specs))
}

func TestCompute_NoChange(t *testing.T) {
	got := diff.Compute(
		diff.Record{"name": "Ahmet"},
		diff.Record{"name": "Ahmet"},
		[]diff.FieldSpec{diff.Key("name")},
	)

	assert.Empty(t, got)
}

func TestCompute_SimpleChange(t *testing.T) {
	got := diff.Compute(
		diff.Record{"name": "Ahmet"},
		diff.Record{"name": "Mehmet"},
		[]diff.FieldSpec{diff.Key("name")},
	)

	require.Len(t, got, 1)
	assert.Equal(t, diff.Change{Key: "name", OldValue: "Ahmet", NewValue: "Mehmet"}, got[0])
}

func TestCompute_BothFalsySuppressed(t *testing.T) {
	// nil → "" is a representation change, not an edit. Suppressed by
	// contract, not an oversight.
	got := diff.Compute(
		diff.Record{"phone": nil},
		diff.Record{"phone": ""},
		[]diff.FieldSpec{diff.Key("phone")},
	)

	assert.Empty(t, got)
}

func TestCompute_FalsyToTruthyReported(t *testing.T) {
	got := diff.Compute(
		diff.Record{"phone": ""},
		diff.Record{"phone": "+7 701 000 00 00"},
		[]diff.FieldSpec{diff.Key("phone")},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "phone", got[0].Key)
}

func TestCompute_CoerciveNumericEquality(t *testing.T) {
	// id stored as a number, submitted as a string: not a change.
	got := diff.Compute(
		diff.Record{"company_id": float64(1)},
		diff.Record{"company_id": "1"},
		[]diff.FieldSpec{diff.Key("company_id")},
	)

	assert.Empty(t, got)
}

func TestCompute_ZeroEqualsZeroString(t *testing.T) {
	// Falsy does not mean empty: a stored 0 submitted back as "0" is the
	// same value, not a change.
	got := diff.Compute(
		diff.Record{"qty": float64(0)},
		diff.Record{"qty": "0"},
		[]diff.FieldSpec{diff.Key("qty")},
	)

	assert.Empty(t, got)
}

func TestCompute_ZeroVsPaddedZeroReported(t *testing.T) {
	// "00" does not stringify to "0", so this pair is a real change.
	got := diff.Compute(
		diff.Record{"qty": float64(0)},
		diff.Record{"qty": "00"},
		[]diff.FieldSpec{diff.Key("qty")},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "qty", got[0].Key)
}

func TestCompute_SpecOrderPreserved(t *testing.T) {
	got := diff.Compute(
		diff.Record{"b": "1", "a": "1"},
		diff.Record{"b": "2", "a": "2"},
		[]diff.FieldSpec{diff.Key("b"), diff.Key("a")},
	)

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Key)
	assert.Equal(t, "a", got[1].Key)
}

func TestCompute_LabelPreferredOverKey(t *testing.T) {
	got := diff.Compute(
		diff.Record{"company_id": "1"},
		diff.Record{"company_id": "2"},
		[]diff.FieldSpec{{Label: "Company", Key: "company_id"}},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "Company", got[0].Key)
}

func TestCompute_SplitKeys(t *testing.T) {
	got := diff.Compute(
		diff.Record{"unload_status": "WAITING"},
		diff.Record{"unloadStatus": "COMPLETED"},
		[]diff.FieldSpec{{Label: "Status", DBKey: "unload_status", FormKey: "unloadStatus"}},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "WAITING", got[0].OldValue)
	assert.Equal(t, "COMPLETED", got[0].NewValue)
}

func TestCompute_CustomExtractors(t *testing.T) {
	companies := map[string]string{"1": "Alpha Logistics", "2": "Beta Cargo"}

	spec := diff.FieldSpec{
		Label: "Company",
		OldValue: func(oldRec, _ diff.Record) any {
			return companies[stringField(oldRec, "company_id")]
		},
		NewValue: func(_, newRec diff.Record) any {
			return companies[stringField(newRec, "company_id")]
		},
	}

	got := diff.Compute(
		diff.Record{"company_id": "1"},
		diff.Record{"company_id": "2"},
		[]diff.FieldSpec{spec},
	)

	require.Len(t, got, 1)
	assert.Equal(t, "Alpha Logistics", got[0].OldValue)
	assert.Equal(t, "Beta Cargo", got[0].NewValue)
}

func TestCompute_UnresolvableSpecIsSilent(t *testing.T) {
	// A spec with no resolution strategy reads nil on both sides and is
	// suppressed rather than panicking.
	got := diff.Compute(
		diff.Record{"name": "x"},
		diff.Record{"name": "y"},
		[]diff.FieldSpec{{Label: "Broken"}},
	)

	assert.Empty(t, got)
}

func stringField(rec diff.Record, key string) string {
	value, _ := rec[key].(string)
	return value
}
