package diag

// Reporter — минимальный контракт получения ошибок ввода-вывода от фаз.
// Реализации: Bag (копит), Printer (сразу в stderr), Multi (fan-out).
type Reporter interface {
	Report(name string, err error)
}

// Nop discards every report.
type Nop struct{}

func (Nop) Report(string, error) {}

// Multi fans a report out to every nested reporter.
type Multi []Reporter

func (m Multi) Report(name string, err error) {
	for _, r := range m {
		if r != nil {
			r.Report(name, err)
		}
	}
}
