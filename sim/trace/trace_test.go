package trace

import "testing"

func sampleRecords() []Record {
	return []Record{
		{Seq: 1, Time: 1.0, Kind: "OPERATION_COMPLETE", Machine: "A", Duration: 1.0},
		{Seq: 2, Time: 1.0, Kind: "FAILURE_OCCURRED", Machine: "A"},
		{Seq: 3, Time: 2.5, Kind: "OPERATION_COMPLETE", Machine: "B", Duration: 2.5},
	}
}

func TestTrace_AppendAndCount(t *testing.T) {
	tr := New()
	for _, r := range sampleRecords() {
		tr.Append(r)
	}

	if tr.Len() != 3 {
		t.Errorf("Len = %d, want 3", tr.Len())
	}
	if got := tr.CountKind("OPERATION_COMPLETE"); got != 2 {
		t.Errorf("CountKind = %d, want 2", got)
	}
}

func TestTrace_RecordsReturnsCopy(t *testing.T) {
	tr := New()
	tr.Append(sampleRecords()[0])

	records := tr.Records()
	records[0].Machine = "tampered"

	if tr.Records()[0].Machine != "A" {
		t.Error("Records must return a copy, not the internal slice")
	}
}

func TestTrace_Reset(t *testing.T) {
	tr := New()
	for _, r := range sampleRecords() {
		tr.Append(r)
	}
	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("Len after reset = %d, want 0", tr.Len())
	}
}
