// Package icons defines the icon identifiers used across the health app.
//
// Screens refer to icons by stable identifiers; the web layer resolves each
// identifier to a Lucide symbol rendered from one inline SVG sprite.
package icons
