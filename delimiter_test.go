package proteomisc

import (
	"strings"
	"testing"
)

func TestDetermineDelimiterTab(t *testing.T) {
	in := "source_name\tdata_file\tlabel\n" +
		"sample1\trun1.raw\tTMT126\n" +
		"sample2\trun1.raw\tTMT127\n"

	if got := DetermineDelimiter(strings.NewReader(in)); got != '\t' {
		t.Errorf("DetermineDelimiter = %q, want tab", got)
	}
}

func TestDetermineDelimiterFallback(t *testing.T) {
	if got := DetermineDelimiter(strings.NewReader("")); got != '\t' {
		t.Errorf("DetermineDelimiter on empty input = %q, want tab", got)
	}
}
