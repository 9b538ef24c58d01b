// Package theme resolves typed, immutable style bundles for the portfolio UI.
//
// Integration example:
//
//	bundle, err := theme.Resolve(theme.VariantOcean, os.Getenv("TERM"))
//	if err != nil {
//		return err
//	}
//	header := bundle.Header.Lipgloss(renderer)
//	head := bundle.RainHead.Lipgloss(renderer)
package theme
