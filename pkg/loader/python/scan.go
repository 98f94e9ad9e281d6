package python

import (
	"regexp"
	"strings"
)

// importStmt is one scanned import statement.
//
// "import a.b, c" becomes {plain: true, items: ["a.b", "c"]}.
// "from ..pkg import x, y" becomes {level: 2, base: "pkg", items: ["x", "y"]}.
type importStmt struct {
	plain bool
	level int
	base  string
	items []string
}

var (
	importRe = regexp.MustCompile(`^import\s+(.+)$`)
	fromRe   = regexp.MustCompile(`^from\s+(\.*)([\w.]*)\s+import\s+(.+)$`)
)

// scanImports extracts import statements from Python source.
//
// The scan is line-based: it joins backslash continuations and parenthesized
// from-import lists, strips comments, and skips lines inside triple-quoted
// strings. Imports nested in conditionals or functions are reported like any
// other - statically, which module actually executes them cannot be known.
func scanImports(src string) []importStmt {
	var stmts []importStmt

	for _, line := range logicalLines(src) {
		if m := fromRe.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, importStmt{
				level: len(m[1]),
				base:  m[2],
				items: splitImportList(m[3]),
			})
			continue
		}
		if m := importRe.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, importStmt{
				plain: true,
				items: splitImportList(m[1]),
			})
		}
	}
	return stmts
}

// logicalLines rejoins physical lines into logical statements: backslash
// continuations and open parentheses pull in following lines, triple-quoted
// blocks are skipped, comments are stripped.
func logicalLines(src string) []string {
	var (
		out      []string
		pending  string
		inString bool
		quote    string
	)

	for _, raw := range strings.Split(src, "\n") {
		line := raw

		if inString {
			if i := strings.Index(line, quote); i >= 0 {
				inString = false
				line = line[i+len(quote):]
			} else {
				continue
			}
		}

		line = stripComment(line)

		// Track triple-quoted strings so imports inside docstrings and
		// string literals are not scanned.
		for {
			i3 := strings.Index(line, `"""`)
			i1 := strings.Index(line, "'''")
			if i3 < 0 && i1 < 0 {
				break
			}
			open := `"""`
			idx := i3
			if i3 < 0 || (i1 >= 0 && i1 < i3) {
				open = "'''"
				idx = i1
			}
			rest := line[idx+3:]
			if j := strings.Index(rest, open); j >= 0 {
				line = line[:idx] + rest[j+3:]
				continue
			}
			inString = true
			quote = open
			line = line[:idx]
			break
		}

		if pending != "" {
			line = pending + " " + strings.TrimSpace(line)
			pending = ""
		} else {
			line = strings.TrimSpace(line)
		}
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, "\\") {
			pending = strings.TrimSpace(strings.TrimSuffix(line, "\\"))
			continue
		}
		if strings.Count(line, "(") > strings.Count(line, ")") {
			pending = line
			continue
		}

		line = strings.ReplaceAll(line, "(", " ")
		line = strings.ReplaceAll(line, ")", " ")
		out = append(out, strings.Join(strings.Fields(line), " "))
	}

	if pending != "" {
		out = append(out, strings.Join(strings.Fields(pending), " "))
	}
	return out
}

// stripComment drops a trailing # comment, ignoring # inside quotes.
func stripComment(line string) string {
	var inQuote rune
	for i, r := range line {
		switch {
		case inQuote != 0:
			if r == inQuote {
				inQuote = 0
			}
		case r == '\'' || r == '"':
			inQuote = r
		case r == '#':
			return line[:i]
		}
	}
	return line
}

// splitImportList splits "a.b as x, c" into ["a.b", "c"], dropping aliases.
func splitImportList(list string) []string {
	var items []string
	for _, part := range strings.Split(list, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		items = append(items, fields[0])
	}
	return items
}
