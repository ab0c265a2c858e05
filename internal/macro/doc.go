// Package macro extracts template-macro invocations from document text.
//
// A macro invocation looks like {{name}} or {{name(args)}}, with an optional
// single space just inside each pair of braces. Names are made of letters,
// digits, underscores and hyphens. Argument lists may not contain braces or
// parentheses; nested invocations are not balanced, so {{foo({{bar}})}}
// yields only {{bar}}.
package macro
