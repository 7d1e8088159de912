// Package handlers declares the HTTP routes of the site: the marketing and
// legal pages, the template catalog, the letter generator endpoints used by
// htmx, the blog and the contact form.
//
// Every handler is a resignly.Handler and returns errors instead of writing
// error responses. ErrorHandler turns those errors into a status code and a
// JSON body, an htmx toast or a full error page depending on the request.
package handlers
