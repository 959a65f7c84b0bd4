package converter

import "strconv"

// DefaultTitle is used by the fallback profile when the report has no title.
const DefaultTitle = "Security Assessment Report"

// Profile is a named set of pandoc options.
type Profile struct {
	Name      string
	Engine    string   // --pdf-engine; empty leaves the choice to pandoc
	To        string   // -t output format for intermediate rendering
	Margin    string   // -V geometry:margin=...
	FontSize  string   // -V fontsize=...
	TOCDepth  int
	TOC       bool
	WithTitle bool // adds --metadata title=<report title>
}

// PrimaryProfile renders through pdflatex with a table of contents.
func PrimaryProfile() Profile {
	return Profile{
		Name:     "latex",
		Engine:   "pdflatex",
		Margin:   "1in",
		FontSize: "11pt",
		TOC:      true,
		TOCDepth: 2,
	}
}

// FallbackProfile renders through HTML, which needs no TeX installation.
func FallbackProfile() Profile {
	return Profile{
		Name:      "html5",
		To:        "html5",
		WithTitle: true,
	}
}

// DefaultProfiles returns the profiles in the order they are tried.
func DefaultProfiles() []Profile {
	return []Profile{PrimaryProfile(), FallbackProfile()}
}

// Args builds the pandoc argument list for converting input into output.
func (p Profile) Args(input, output, title string) []string {
	args := []string{input, "-o", output}
	if p.Engine != "" {
		args = append(args, "--pdf-engine="+p.Engine)
	}
	if p.To != "" {
		args = append(args, "-t", p.To)
	}
	if p.Margin != "" {
		args = append(args, "-V", "geometry:margin="+p.Margin)
	}
	if p.FontSize != "" {
		args = append(args, "-V", "fontsize="+p.FontSize)
	}
	if p.TOC {
		args = append(args, "--toc")
		if p.TOCDepth > 0 {
			args = append(args, "--toc-depth="+strconv.Itoa(p.TOCDepth))
		}
	}
	if p.WithTitle {
		if title == "" {
			title = DefaultTitle
		}
		args = append(args, "--metadata", "title="+title)
	}
	return args
}
