package gui

import "github.com/go-drift/guikit/pkg/language"

// String ids of the toolbar windows.
const (
	StrToolbarQuit language.StringID = language.FirstUserString + iota
	StrToolbarSettings
	StrToolbarPaths
	StrToolbarSave
	StrToolbarLoad
	StrToolbarRideSelect
	StrToolbarTerraform
	StrToolbarFinances

	StrTooltipQuit
	StrTooltipSettings
	StrTooltipPaths
	StrTooltipSave
	StrTooltipLoad
	StrTooltipRideSelect
	StrTooltipTerraform
	StrTooltipFinances

	StrQuitCaption
	StrTitleBarTip
	StrQuitMessage
	StrQuitNo
	StrQuitYes
)

// StringNames maps the symbolic names used in language files to ids.
var StringNames = map[string]language.StringID{
	"GUI_TOOLBAR_GUI_QUIT":        StrToolbarQuit,
	"GUI_TOOLBAR_GUI_SETTINGS":    StrToolbarSettings,
	"GUI_TOOLBAR_GUI_PATHS":       StrToolbarPaths,
	"GUI_TOOLBAR_GUI_SAVE":        StrToolbarSave,
	"GUI_TOOLBAR_GUI_LOAD":        StrToolbarLoad,
	"GUI_TOOLBAR_GUI_RIDE_SELECT": StrToolbarRideSelect,
	"GUI_TOOLBAR_GUI_TERRAFORM":   StrToolbarTerraform,
	"GUI_TOOLBAR_GUI_FINANCES":    StrToolbarFinances,

	"GUI_TOOLBAR_GUI_TOOLTIP_QUIT_PROGRAM": StrTooltipQuit,
	"GUI_TOOLBAR_GUI_TOOLTIP_SETTINGS":     StrTooltipSettings,
	"GUI_TOOLBAR_GUI_TOOLTIP_BUILD_PATHS":  StrTooltipPaths,
	"GUI_TOOLBAR_GUI_TOOLTIP_SAVE_GAME":    StrTooltipSave,
	"GUI_TOOLBAR_GUI_TOOLTIP_LOAD_GAME":    StrTooltipLoad,
	"GUI_TOOLBAR_GUI_TOOLTIP_RIDE_SELECT":  StrTooltipRideSelect,
	"GUI_TOOLBAR_GUI_TOOLTIP_TERRAFORM":    StrTooltipTerraform,
	"GUI_TOOLBAR_GUI_TOOLTIP_FINANCES":     StrTooltipFinances,

	"GUI_QUIT_CAPTION": StrQuitCaption,
	"GUI_TITLEBAR_TIP": StrTitleBarTip,
	"GUI_QUIT_MESSAGE": StrQuitMessage,
	"GUI_QUIT_NO":      StrQuitNo,
	"GUI_QUIT_YES":     StrQuitYes,
}

// English returns the built-in English strings.
func English() *language.Language {
	lang := language.English()
	for id, s := range map[language.StringID]string{
		StrToolbarQuit:       "Quit",
		StrToolbarSettings:   "Settings",
		StrToolbarPaths:      "Paths",
		StrToolbarSave:       "Save",
		StrToolbarLoad:       "Load",
		StrToolbarRideSelect: "Rides",
		StrToolbarTerraform:  "Terraform",
		StrToolbarFinances:   "Finances",

		StrTooltipQuit:       "Quit the program",
		StrTooltipSettings:   "Change the settings",
		StrTooltipPaths:      "Build paths",
		StrTooltipSave:       "Save the game",
		StrTooltipLoad:       "Load a game",
		StrTooltipRideSelect: "Select a ride to build",
		StrTooltipTerraform:  "Change the landscape",
		StrTooltipFinances:   "Show the park finances",

		StrQuitCaption: "Quit",
		StrTitleBarTip: "Drag to move the window",
		StrQuitMessage: "Do you really want to quit?",
		StrQuitNo:      "No",
		StrQuitYes:     "Yes",
	} {
		lang.Strings[id] = s
	}
	return lang
}

// DefaultStrings returns a table holding only the English strings.
func DefaultStrings() *language.Table {
	return language.NewTable(English())
}
