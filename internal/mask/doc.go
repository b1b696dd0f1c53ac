// Package mask compiles input-mask patterns into fixed-width column
// descriptions.
//
// A pattern such as "###,##0.0##-" or "##\/##\/####" compiles into an
// ordered list of Sections, one per column. Adjacent compatible sections
// merge into Runs, the units that shift and refill during editing, and
// runs group into Fields, the units of cursor navigation. Compilation is
// the only fallible step; a compiled mask never produces errors while
// editing.
package mask
