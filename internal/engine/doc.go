// Package engine ties the versioned text buffer to its caretaker.
//
// The Caretaker triggers checkpoints and restores on an Originator without
// looking inside the checkpoints it asks for:
//
//	buf := buffer.NewBuffer("doc.txt")
//	ct := engine.NewCaretaker()
//
//	buf.Append("Class notes\n")
//	ct.Save(buf)
//	buf.Append("Extra material\n")
//
//	if err := ct.Undo(buf, 0); err != nil {
//	    // errors.Is(err, buffer.ErrInvalidSteps)
//	}
//
// The Caretaker keeps no state of its own; one Caretaker can serve any
// number of buffers.
package engine
