// Package components renders theme tokens for the terminal.
//
// A Theme is derived from a generated token set, so previews are drawn in
// the colours they describe:
//
//	tokens := theme.Build(cfg)
//	ctx := components.DefaultContext().WithTheme(components.FromTokens(tokens.Color))
//	fmt.Println(components.VStack(
//		components.NewHeader(cfg.Brand).WithSubtitle(cfg.Name),
//		components.NewScaleSwatch("primary", tokens.Color.Primary),
//	).WithGap(1).ViewWithContext(ctx))
//
// Components implement Renderable. View uses DefaultContext; ViewWithContext
// takes an explicit theme and width.
package components
