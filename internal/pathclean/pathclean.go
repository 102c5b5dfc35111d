// Package pathclean implements lexical path joining and cleaning.
//
// All operations are purely textual: `.` segments are dropped, `..` segments
// are resolved against preceding segments where possible, and redundant
// separators collapse to one. The filesystem is never consulted, so symlinks
// are not followed and no path needs to exist.
package pathclean

// IsAbs reports whether path begins with the separator.
func IsAbs(path string) bool {
	return len(path) > 0 && path[0] == '/'
}

// IsDir reports whether path ends with the separator, signaling directory
// intent independent of whether any segment names a directory on disk.
func IsDir(path string) bool {
	return len(path) > 0 && path[len(path)-1] == '/'
}

// AppendClean tokenizes path into separator-delimited segments and appends
// the cleaned form of each to buf, returning the extended buffer.
//
// lookupParent carries state across calls sharing one buffer: once set, the
// buffer holds no real segment left to pop, so every further ".." must be
// kept literally. Appending a real segment clears it. Join threads a single
// flag through both of its passes so that ".." segments in the second
// argument can walk back over segments contributed by the first.
func AppendClean(buf []byte, path string, lookupParent *bool) []byte {
	for i := 0; i < len(path); {
		for i < len(path) && path[i] == '/' {
			i++
		}
		start := i
		for i < len(path) && path[i] != '/' {
			i++
		}
		seg := path[start:i]

		switch seg {
		case "":
			continue
		case ".":
			continue
		case "..":
			if !*lookupParent {
				// Scan back to the start of the buffer's last segment.
				k := len(buf)
				for k > 0 && buf[k-1] != '/' {
					k--
				}
				if last := buf[k:]; len(buf) > 0 && string(last) != ".." {
					// Pop it, dropping the separator before it but never
					// consuming the leading slash of an absolute buffer.
					for k > 1 && buf[k-1] == '/' {
						k--
					}
					buf = buf[:k]
					continue
				}
				// Nothing left to pop: the buffer is empty or holds only
				// unresolved ".." segments. This ".." survives literally.
				*lookupParent = true
			}
		default:
			*lookupParent = false
		}

		if len(buf) > 0 && buf[len(buf)-1] != '/' {
			buf = append(buf, '/')
		}
		buf = append(buf, seg...)
	}
	return buf
}

// Join concatenates dir and file and returns the cleaned result.
//
// The result is absolute exactly when dir is absolute; ".." segments never
// climb above an absolute root. A leading separator on file carries no
// meaning of its own: it is skipped like any other separator run, so
// concatenate-then-clean semantics apply uniformly. The result is never
// empty; when everything cancels out it is ".". If file ends with a
// separator the result keeps one, preserving directory intent, except when
// the result is just ".".
func Join(dir, file string) string {
	buf := make([]byte, 0, len(dir)+len(file)+8)
	if IsAbs(dir) {
		buf = append(buf, '/')
	}
	lookupParent := false
	buf = AppendClean(buf, dir, &lookupParent)
	buf = AppendClean(buf, file, &lookupParent)
	if len(buf) == 0 {
		// Everything cancelled out; "." carries no directory marker.
		buf = append(buf, '.')
	} else if buf[len(buf)-1] != '/' && IsDir(file) {
		buf = append(buf, '/')
	}
	return string(buf)
}

// Clean returns the canonical form of a single path: no "." segments, no
// redundant separators, ".." resolved wherever a preceding real segment
// allows, no trailing separator except on the root itself. The empty path
// cleans to ".".
func Clean(path string) string {
	return Join(path, "")
}
