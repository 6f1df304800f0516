package diag

// Entry is one recorded failure: the source it came from and the
// underlying error.
type Entry struct {
	Name string
	Err  error
}

// Bag collects failures for the whole run. A non-empty bag means the run
// finished but must report overall failure.
type Bag struct {
	entries []Entry
}

func NewBag() *Bag {
	return &Bag{}
}

// Report реализует интерфейс Reporter.
func (b *Bag) Report(name string, err error) {
	b.entries = append(b.entries, Entry{Name: name, Err: err})
}

func (b *Bag) Empty() bool {
	return len(b.entries) == 0
}

func (b *Bag) Len() int {
	return len(b.entries)
}

// Entries returns the recorded failures in report order.
func (b *Bag) Entries() []Entry {
	return b.entries
}
