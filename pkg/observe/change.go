package observe

// ChangeKind classifies why a sequence event fired.
type ChangeKind uint8

const (
	// Setting means the whole sequence was replaced.
	Setting ChangeKind = iota
	// Insertion means one element was inserted at Index.
	Insertion
	// Removal means one element was removed from Index.
	Removal
	// Replacement means the element at Index was overwritten.
	Replacement
)

func (k ChangeKind) String() string {
	switch k {
	case Setting:
		return "setting"
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	case Replacement:
		return "replacement"
	default:
		return "unknown"
	}
}

// Change carries the classification of a sequence event together with the
// affected element and its index. For Setting, Element is the zero value and
// Index is -1.
type Change[T any] struct {
	Kind    ChangeKind
	Element T
	Index   int
}

func setting[T any]() Change[T] {
	return Change[T]{Kind: Setting, Index: -1}
}

func insertion[T any](el T, index int) Change[T] {
	return Change[T]{Kind: Insertion, Element: el, Index: index}
}

func removal[T any](el T, index int) Change[T] {
	return Change[T]{Kind: Removal, Element: el, Index: index}
}

func replacement[T any](el T, index int) Change[T] {
	return Change[T]{Kind: Replacement, Element: el, Index: index}
}
