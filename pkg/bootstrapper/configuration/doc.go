// Package configuration feeds configuration sections to extensions.
//
// A section is a named set of string values. The section of an extension is
// named after its type, unless it implements SectionNamer. Sections are read
// from a Loader, either the one given to the behaviors or the extension itself
// when it implements Loader. ViperLoader and HCLLoader read them from files.
//
// SectionBehavior hands the whole section to SectionConsumer extensions, while
// ExtensionSectionBehavior assigns the values to the fields of the extensions.
package configuration
