package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод CLI. Write позволяет печатать таблицы через tablewriter.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	IsTerminal() bool
	Write(p []byte) (n int, err error)
}
