package sdrf

import (
	"errors"
	"strings"
	"testing"
)

func TestExportSample(t *testing.T) {
	samples, err := Read(strings.NewReader(testTable), '\t')
	if err != nil {
		t.Fatal(err)
	}

	s, err := samples[0].ExportSample()
	if err != nil {
		t.Fatal(err)
	}

	if s.ID != "sample_1" {
		t.Errorf("ID = %q, want %q", s.ID, "sample_1")
	}
	if s.Name != "Sample 1" {
		t.Errorf("Name = %q, want the row name verbatim", s.Name)
	}

	// organism and organism part map to terms; the TMT label maps to its
	// reagent term with no value.
	if len(s.CvParams) != 3 {
		t.Fatalf("got %d cvParams, want 3: %+v", len(s.CvParams), s.CvParams)
	}
	if s.CvParams[2].Accession != "MS:1002616" || s.CvParams[2].Value != "" {
		t.Errorf("label param = %+v", s.CvParams[2])
	}

	// The unmapped factor and the innate assay name column become
	// userParams; the data file comment is excluded entirely.
	if len(s.UserParams) != 2 {
		t.Fatalf("got %d userParams, want 2: %+v", len(s.UserParams), s.UserParams)
	}
	for _, up := range s.UserParams {
		if up.Name == "comment[data file]" {
			t.Error("data file field must not be exported as metadata")
		}
	}
	if s.UserParams[1].Name != "factor value[phenotype]" || s.UserParams[1].Value != "control" {
		t.Errorf("factor param = %+v", s.UserParams[1])
	}
}

func TestExportSampleExcludesInstrument(t *testing.T) {
	table := "source name\tcomment[instrument]\tcomment[data file]\n" +
		"Sample 1\tQ Exactive\trun1.raw\n"

	samples, err := Read(strings.NewReader(table), '\t')
	if err != nil {
		t.Fatal(err)
	}

	s, err := samples[0].ExportSample()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.CvParams) != 0 || len(s.UserParams) != 0 {
		t.Errorf("instrument and data file must not be exported: %+v %+v", s.CvParams, s.UserParams)
	}
}

func TestGroupByDataFileTotality(t *testing.T) {
	table := "source name\tcomment[data file]\n" +
		"Sample 1\trun1.raw\n" +
		"Sample 2\trun2.raw\n" +
		"Sample 3\trun1.raw\n"

	samples, err := Read(strings.NewReader(table), '\t')
	if err != nil {
		t.Fatal(err)
	}

	groups, err := GroupByDataFile(samples)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(samples) {
		t.Errorf("group sizes sum to %d, want %d", total, len(samples))
	}

	run1 := groups["run1.raw"]
	if len(run1) != 2 || run1[0].Name != "Sample 1" || run1[1].Name != "Sample 3" {
		t.Errorf("run1.raw group = %+v", run1)
	}
	if len(groups["run2.raw"]) != 1 {
		t.Errorf("run2.raw group = %+v", groups["run2.raw"])
	}
}

func TestGroupByDataFileMissingAssociation(t *testing.T) {
	table := "source name\tcharacteristics[organism]\n" +
		"Sample 1\tHomo sapiens\n"

	samples, err := Read(strings.NewReader(table), '\t')
	if err != nil {
		t.Fatal(err)
	}

	_, err = GroupByDataFile(samples)

	var me *MissingDataFileError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MissingDataFileError, got %v", err)
	}
	if me.Row != 0 {
		t.Errorf("MissingDataFileError.Row = %d, want 0", me.Row)
	}
}
