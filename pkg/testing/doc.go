// Package testing provides a harness for testing windows without a
// renderer.
//
// # Quick Start
//
// Create a tester, open a window and make assertions:
//
//	func TestMyWindow(t *testing.T) {
//	    tester := guitest.NewWindowTesterWithT(t, guitest.WithStrings(strings))
//	    tester.Open(myDefinition)
//
//	    // Simulate input
//	    tester.Tap(guitest.ByNumber("my-window", MyButton))
//
//	    // Assert state
//	    if !tester.Find(guitest.ByText("Done")).Exists() {
//	        t.Error("expected 'Done' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare window geometry snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_window.snapshot.json")
//
// Update snapshots with:
//
//	GUIKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import guitest "github.com/go-drift/guikit/pkg/testing"
package testing
