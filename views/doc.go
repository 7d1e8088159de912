// Package views holds the HTML templates of the site.
//
// Templates are plain html/template files embedded in the binary and exposed
// as templ components through templ.FromGoHTML, so handlers render them with
// Context.Render like any other component. Full pages share layout.html;
// partials are the htmx fragments (letter preview, validation messages,
// template grid, contact form) and are also included by the pages.
package views
