package sdrf

import "github.com/carbocation/proteomisc/mzml"

// Term identifies a controlled-vocabulary entry: the vocabulary it
// belongs to, its accession, and its preferred label.
type Term struct {
	CvRef     string
	Accession string
	Name      string
}

// FieldTerms maps canonical SDRF field names onto controlled-vocabulary
// terms. A field whose canonical name is absent from this table is
// emitted as a userParam instead, so no annotation is lost.
var FieldTerms = map[string]Term{
	"organism":             {"OBI", "OBI:0100026", "organism"},
	"organism part":        {"EFO", "EFO:0000635", "organism part"},
	"developmental stage":  {"EFO", "EFO:0000399", "developmental stage"},
	"ancestry category":    {"HANCESTRO", "HANCESTRO:0004", "ancestry category"},
	"cell type":            {"EFO", "EFO:0000324", "cell type"},
	"material type":        {"BFO", "BFO:0000040", "material type"},
	"age":                  {"EFO", "EFO:0000246", "age"},
	"disease":              {"EFO", "EFO:0000408", "disease"},
	"time":                 {"EFO", "EFO:0000721", "time"},
	"technology type":      {"EFO", "EFO:0005521", "technology type"},
	"biological replicate": {"EFO", "EFO:0002091", "biological replicate"},
	"technical replicate":  {"MS", "MS:1001808", "technical replicate"},
	"fraction identifier":  {"MS", "MS:1000858", "fraction identifier"},
	"file uri":             {"PRIDE", "PRIDE:0000577", "file uri"},
}

// LabelTerms maps isobaric label cell values onto their reagent terms.
// The tag identity is the term itself, so these are emitted with no
// value attached. An unrecognized label value falls back to a userParam.
//
// TODO: the PRIDE CV carries its own terms for some of these reagents;
// if PRIDE submission tooling ever requires those accessions, this table
// needs a second column.
var LabelTerms = map[string]Term{
	"TMT126":  {"MS", "MS:1002616", "TMT reagent 126"},
	"TMT127":  {"MS", "MS:1002617", "TMT reagent 127"},
	"TMT128":  {"MS", "MS:1002618", "TMT reagent 128"},
	"TMT129":  {"MS", "MS:1002619", "TMT reagent 129"},
	"TMT130":  {"MS", "MS:1002620", "TMT reagent 130"},
	"TMT131":  {"MS", "MS:1002621", "TMT reagent 131"},
	"TMT127N": {"MS", "MS:1002763", "TMT reagent 127N"},
	"TMT127C": {"MS", "MS:1002764", "TMT reagent 127C"},
	"TMT128N": {"MS", "MS:1002765", "TMT reagent 128N"},
	"TMT128C": {"MS", "MS:1002766", "TMT reagent 128C"},
	"TMT129N": {"MS", "MS:1002767", "TMT reagent 129N"},
	"TMT129C": {"MS", "MS:1002768", "TMT reagent 129C"},
	"TMT130N": {"MS", "MS:1002769", "TMT reagent 130N"},
	"TMT130C": {"MS", "MS:1002770", "TMT reagent 130C"},
}

// Param converts the field into an mzML parameter: a cvParam when the
// canonical name (or, for the label field, the cell value) has a known
// term, otherwise a userParam carrying the header and cell text
// verbatim.
func (f Field) Param() (mzml.Param, error) {
	name, err := f.CanonicalName()
	if err != nil {
		return nil, err
	}

	if name == "label" {
		if t, ok := LabelTerms[f.Value.String()]; ok {
			return mzml.CVParam{CvRef: t.CvRef, Accession: t.Accession, Name: t.Name}, nil
		}
	} else if t, ok := FieldTerms[name]; ok {
		return mzml.CVParam{CvRef: t.CvRef, Accession: t.Accession, Name: t.Name, Value: f.Value.String()}, nil
	}

	return mzml.UserParam{Name: f.Name, Value: f.Value.String()}, nil
}
