// Package docgen generates Word (DOCX) documents in memory and keeps them in
// an in-process cache for later download.
//
// # Quick Start
//
// Create a service, build a document, and fetch it by key:
//
//	svc, err := docgen.New(docgen.WithTemplatesDir("templates"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.BuildPlain("Offer Letter", "Dear Jane,\nWelcome aboard.", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	content, err := svc.FetchDocument(result.Key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, content, 0644)
//
// # Building Documents
//
// Three entry points produce documents, all returning a Result with the
// sanitized filename and the cache key:
//
//  1. BuildPlain — a heading plus one paragraph per content line.
//  2. BuildMarkdown — Markdown content rendered to headings, paragraphs,
//     and bullet lists via Goldmark.
//  3. BuildFromTemplate — a .docx template from the template directory
//     rendered with go-stencil. Variable resolution is strict: a binding
//     missing for any placeholder the template declares fails with
//     ErrMissingVariable rather than producing a silently incomplete
//     document.
//
// # Templates
//
// Templates are .docx files in a single directory. ListTemplates enumerates
// them and GetPlaceholders reports the variables a template requires,
// extracted from the document XML (with a raw text-scan fallback for
// templates the XML walk cannot handle).
//
// # The Document Cache
//
// Built documents live only in memory. Each build stores the rendered bytes
// under a fresh key; FetchDocument and FetchFilename read them back, and
// Evict releases them. The cache is unbounded and entries survive until
// evicted or the process exits. Keys combine a timestamp with the filename
// and are unique for the lifetime of the cache, but are not cryptographic
// tokens — do not use them as authorization.
//
// # Deployments Without Templating
//
// Template rendering is an optional capability. Construct the service with
// WithoutTemplating to disable it; BuildFromTemplate then fails fast with
// ErrEngineUnavailable while plain and Markdown generation keep working.
package docgen
