// Package web hosts the browser-facing community health service: the
// onboarding flow and the role screens, rendered on the server for low-end
// phones.
package web
