// Package coralsense is editor IntelliSense for a utility-class CSS
// framework.
//
// A Provider is built once per theme and answers three questions about a
// class string such as "md:hover:bg-coral-500/50":
//
//   - what can complete a typed prefix (Completions)
//   - whether the class is valid, and if not why (Validate, Diagnose)
//   - what color and contrast information it carries (Colors, ColorLocations)
//
// # Usage
//
//	p := coralsense.NewProvider(theme.Default())
//	for _, d := range p.Diagnose(`<div class="flex grd p-13">`) {
//		fmt.Println(d.ClassName, d.Message, d.Suggestions)
//	}
//
// # Linting
//
// Lint runs the same checks over files on disk and reports them in
// golangci-lint format:
//
//	result, err := coralsense.Lint(ctx, afero.NewOsFs(), p, coralsense.LintConfig{
//		ScanPaths: []string{"web/**/*.html"},
//		Conflicts: true,
//	})
//
// # CLI Tool
//
// Install the coralsense command with:
//
//	go install github.com/yacobolo/coralsense/cmd/coralsense@latest
package coralsense
