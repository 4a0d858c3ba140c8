package cli

import "testing"

func TestDefaultPrinterIsShared(t *testing.T) {
	ResetPrinter()
	t.Cleanup(ResetPrinter)

	first := DefaultPrinter()
	second := DefaultPrinter()
	if first != second {
		t.Errorf("DefaultPrinter() returned distinct instances")
	}

	ResetPrinter()
	third := DefaultPrinter()
	if third == first {
		t.Errorf("DefaultPrinter() after reset returned the old instance")
	}
}
