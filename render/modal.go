package render

// CVOption is one downloadable résumé format
type CVOption struct {
	// Key selects the cv.<key>.label and cv.<key>.description strings
	Key      string
	File     string
	Filename string
}

// CVOptions are listed in display order; option n is chosen with key n+1
var CVOptions = []CVOption{
	{Key: "standard", File: "/CVs/CV_Samuel_Monsalve_Orrego.pdf", Filename: "CV_Samuel_Monsalve_Orrego.pdf"},
	{Key: "ats", File: "/CVs/CV_ATS_Samuel_Monsalve_Orrego.pdf", Filename: "CV_ATS_Samuel_Monsalve_Orrego.pdf"},
}

// CVModal is the résumé format picker
type CVModal struct {
	open bool
}

func (m *CVModal) Open()        { m.open = true }
func (m *CVModal) Close()       { m.open = false }
func (m *CVModal) IsOpen() bool { return m.open }

// Choose selects option i and closes the modal; false when closed or out of range
func (m *CVModal) Choose(i int) (CVOption, bool) {
	if !m.open || i < 0 || i >= len(CVOptions) {
		return CVOption{}, false
	}
	m.open = false
	return CVOptions[i], true
}
