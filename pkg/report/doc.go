// Package report holds the naming and metadata conventions for assessment reports.
//
// A report is a single file on disk, either a markdown source or an already
// rendered PDF. Its logical subject (the "domain") is derived from the file
// name, so "example-domain-com.md" is a report about "example.domain.com".
//
//	domain := report.Domain("reports/example-domain-com.md")
//	// domain == "example.domain.com"
//
// The derivation is a naming convention only. Nothing checks that the result
// is a resolvable host name, so "my-report-v2.md" yields "my.report.v2".
//
// # Metadata
//
// Markdown reports may start with a YAML front matter block. ParseMetadata
// reads it and falls back to the first level-one heading for the title:
//
//	meta, err := report.ParseMetadata(source)
//	if err != nil {
//		return err
//	}
//	fmt.Println(meta.Title)
package report
