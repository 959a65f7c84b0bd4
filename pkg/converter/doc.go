// Package converter turns markdown reports into PDF files by running pandoc.
//
// Conversion is a thin wrapper around the external binary. The converter
// decides whether a conversion is needed at all, then tries an ordered list
// of rendering profiles until one produces the output file:
//
//   - Inputs with a .pdf extension are returned unchanged.
//   - If the target PDF (input with the extension replaced) already exists,
//     it is reused without running pandoc.
//   - Otherwise the primary profile (LaTeX engine, table of contents, fixed
//     margins and font size) runs first, then the HTML-based fallback.
//
// Usage:
//
//	c := converter.New(converter.WithLogger(log))
//	doc, err := c.Convert(ctx, "example-domain-com.md")
//	if err != nil {
//		fmt.Fprintln(os.Stderr, converter.Hint(err))
//		return err
//	}
//	fmt.Println(doc.Path)
//
// An attempt succeeds only when pandoc exits with status zero and the output
// file exists afterwards. Partially written output is never removed.
//
// # Errors
//
//   - ErrInputNotFound: the input file does not exist
//   - ErrNotInstalled: pandoc could not be executed
//   - ErrConversionFailed: every profile failed
//
// A cancelled context is returned as ctx.Err() without either sentinel.
package converter
