// Package transducer reformats Ekitan route-search text dumps line by line.
//
// A single forward pass drops fare and round-trip notes, folds each
// "origin → destination" headline into the line that follows it, and
// annotates departure lines with the duration of the leg that starts there.
// Sections introduced by "Plan <name>" and closed by "Plan End" are tracked
// as alternate branches and get their own "Plan <name>: <duration>" notes.
//
// # Usage
//
//	t := transducer.New(transducer.DefaultOptions())
//	lines, err := t.Process(strings.NewReader(dump))
//	if err != nil {
//	    return err
//	}
//	for _, l := range lines {
//	    fmt.Println(l.String())
//	}
//
// Annotations are appended to lines already emitted, so the result is only
// complete once the whole input has been consumed.
package transducer
