// Package scaffold generates new guide files from embedded templates. It
// powers the "docsmith new" command, producing the section skeleton for each
// category with the guide title pre-filled. Generation refuses to touch an
// existing file.
package scaffold
