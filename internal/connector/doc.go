// Package connector implements the source connectors that turn a search
// term into raw text items from one external content provider. Each
// connector enforces its own item cap and relevance filter; transport and
// auth failures surface as errors that the pipeline absorbs.
package connector
