// Package formatter serves Brazilian input masks to the browser.
//
// The service renders a form whose inputs are identified by the ids
// registered in a mask.Fields map and reformats their values on every edit.
// Two client styles are supported:
//
//   - DataStar: inputs bind a signal named after the element id and post all
//     signals to /format. The response patches only the reformatted signals.
//   - htmx: inputs post their own value to /format/{field} and the response
//     is the re-rendered input element swapped in place.
//
// Ids that are not registered are skipped. The signal endpoint drops them from
// the patch and the field endpoint answers 204 No Content.
//
// # Usage
//
//	fields, err := mask.LoadFieldsFile(cfg.FieldsFile)
//	if err != nil {
//		return err
//	}
//	svc := formatter.NewService(fields, formatter.DefaultViews(), handler.NewErrorHandler(log), log)
//
//	r := chi.NewRouter()
//	r.Mount("/", svc.Handle())
//
// The caret position is not preserved when a value is rewritten, so editing
// in the middle of a masked value moves the caret to the end.
package formatter
