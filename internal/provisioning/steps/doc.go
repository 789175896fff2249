// Package steps contains the ordered provisioning steps, one per resource
// family. Steps communicate through the shared provisioning state: each step
// reads what earlier steps produced and records what later steps need.
package steps
