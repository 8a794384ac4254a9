// Package content renders the spintax fields of a site page.
//
// A RenderRequest names the site domain, the page, the template variables
// and the list of fields to render. Each field is expanded with the spintax
// engine using the domain (plus the field's optional seed suffix) as seed, so
// a site always gets the same copy while different sites get different
// copy. Fields can be made conditional with a CEL expression, and an
// optional Handlebars layout assembles the rendered fields into a document.
//
// Example usage:
//
//	renderer := content.NewRenderer(content.Options{CELEnabled: true}, logger)
//
//	result, err := renderer.Render(ctx, &content.RenderRequest{
//	    Domain: "austinroofing.com",
//	    Page:   "roof-repair",
//	    Vars:   map[string]string{"city": "Austin"},
//	    Fields: []content.Field{
//	        {Name: "title", Template: "{Roof Repair|Roofing Experts} in {{city}}", SeedSuffix: "-title"},
//	        {Name: "phone_cta", Template: "Call {{phone}}", When: "'phone' in vars"},
//	    },
//	})
//	// result.Fields["title"] is stable for austinroofing.com;
//	// "phone_cta" is listed in result.Skipped.
package content
