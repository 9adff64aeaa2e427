package catalog

// Auto is the sentinel source option meaning "detect the language".
const Auto = "Auto"

// Language pairs a UI display name with its provider code.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// languages is the fixed set of languages selectable in the UI, in
// display order. Display names are Spanish to match the site copy.
var languages = []Language{
	{"Inglés", "en"},
	{"Español", "es"},
	{"Francés", "fr"},
	{"Alemán", "de"},
	{"Italiano", "it"},
	{"Portugués", "pt"},
	{"Japonés", "ja"},
	{"Coreano", "ko"},
	{"Chino (Mandarín)", "zh"},
	{"Árabe", "ar"},
	{"Ruso", "ru"},
}

var nameToCode = func() map[string]string {
	m := make(map[string]string, len(languages))
	for _, l := range languages {
		m[l.Name] = l.Code
	}
	return m
}()

// Code resolves a display name to its two-letter provider code.
func Code(name string) (string, bool) {
	code, ok := nameToCode[name]
	return code, ok
}

// Names returns the supported display names in display order.
func Names() []string {
	out := make([]string, len(languages))
	for i, l := range languages {
		out[i] = l.Name
	}
	return out
}

// Languages returns the full catalog in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
