// Package listnav implements keyboard navigation over an ordered list.
//
// A Navigator keeps a cursor that is free to run past either end of the
// list; MapIndex folds it back into range when the selection is read, so
// repeated moves wrap around predictably. Key events arrive from a Source,
// are reduced to State transitions, and Enter hands the selected element to
// the caller. Typing letters or digits jumps to the first element with the
// typed prefix until the type-ahead buffer goes idle.
package listnav
