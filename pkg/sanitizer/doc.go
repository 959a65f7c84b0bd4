// Package sanitizer removes markup from text taken out of report sources.
//
// Report titles come from markdown front matter or headings and may carry
// inline HTML. They are passed to pandoc as plain metadata, so every tag is
// stripped and script or style content is dropped. Entities are decoded
// afterwards so that "R&D" stays "R&D" instead of becoming "R&amp;D".
package sanitizer
