// Package logtail reads the end of the freesound log file for the -logs flag.
//
// Tail seeks to the end of the file and reads fixed-size chunks backwards
// until it has seen enough newlines, so memory stays proportional to the
// lines returned rather than to the file size. Lines come back in file order
// with trailing carriage returns removed.
//
//	lines, err := logtail.Tail(cfg.LogFile, 50)
//	if err != nil {
//		return err
//	}
//	return logtail.Print(os.Stdout, lines)
//
// Print renders each JSON event through zerolog's ConsoleWriter
// (timestamp, level abbreviation, message, then key=value fields). Lines
// that are not JSON, such as partial writes after a crash, are printed
// verbatim.
package logtail
