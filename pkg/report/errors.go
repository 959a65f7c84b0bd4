package report

import "errors"

// ErrInvalidFrontmatter indicates the YAML front matter block could not be parsed.
var ErrInvalidFrontmatter = errors.New("report: invalid front matter")
