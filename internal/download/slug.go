package download

import "strings"

// slugReplacer maps the characters that are illegal in filenames on common
// filesystems to underscores.
var slugReplacer = strings.NewReplacer(
	"/", "_",
	`\`, "_",
	"<", "_",
	">", "_",
	"|", "_",
	`"`, "_",
	"*", "_",
	"?", "_",
	":", "_",
)

// Slugify renders a card name safe for use as a filename. Idempotent: the
// replacement character is never itself replaced.
func Slugify(name string) string {
	return slugReplacer.Replace(name)
}
