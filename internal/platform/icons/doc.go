// Package icons defines sprite icon records and derives their display identity.
//
// A Record is one renderable sprite entry as produced by the build
// orchestrator. The Classifier turns a record into the labels and CSS class
// tags shown in the overview pages; it is a pure function of the record plus
// the classifier's resolved configuration.
package icons
