// Package espir provides menu widgets for small colour panels: a single column
// of buttons, each with an optional sub-menu of option grids.
//
// # Basic Usage
//
//	menu, err := espir.NewMenu(display, []espir.MenuItem{
//	    {Label: "Power"},
//	    {Label: "Mode", Action: "mode"},
//	})
//	if err != nil {
//	    return err
//	}
//
//	err = menu.Buttons()[1].AddSelector(espir.SelectorConfig{
//	    Prompt:      "Fan",
//	    Options:     []string{"Auto", "Low", "Mid", "High"},
//	    WindowSize:  4,
//	    MaxSelected: 1,
//	})
//
//	nav := espir.NewNavigator(menu)
//	nav.Start()
//	for cmd := range commands {
//	    result := nav.Handle(cmd)
//	    ...
//	}
//
// Every call runs to completion on the calling goroutine. The only waits are
// the two holds of the confirmation pulse, which block.
package espir
