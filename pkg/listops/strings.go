package listops

import "strings"

const (
	DefaultDelimiter    = ","
	WhiteSpaceDelimiter = " "
)

// Join concatenates the elements of list into a single string, separated by
// delimiter, in encounter order. It returns "" if list or delimiter is empty.
func Join(list []string, delimiter string) string {
	if isEmpty(list) || delimiter == "" {
		return ""
	}

	return strings.Join(list, delimiter)
}

// JoinDefault joins with the default ',' delimiter.
func JoinDefault(list []string) string {
	return Join(list, DefaultDelimiter)
}

// Split splits source into substrings wherever delimiter occurs, treating
// the delimiter as a literal string, not a pattern. Every occurrence is a
// boundary, so leading or trailing delimiters yield empty elements. It
// returns an empty list if source or delimiter is empty.
func Split(source string, delimiter string) []string {
	if source == "" || delimiter == "" {
		return []string{}
	}

	return strings.Split(source, delimiter)
}

// SplitDefault splits on the default ',' delimiter.
func SplitDefault(source string) []string {
	return Split(source, DefaultDelimiter)
}
