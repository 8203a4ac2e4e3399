package sinkgen

var lookupTableView = newView(LookupTableText, lookupPreamble, lookupBlock, lookupPostscript)

// RenderLookupTable renders the block-delimited method table source that the
// table compiler turns into JSSink.lut.h.
func RenderLookupTable(s *Schema) (Artifact, error) {
	return lookupTableView.render(s)
}

const lookupPreamble = ``

const lookupBlock = `
/* Source for {{.ObjectTable.Name}}Values.lut.h
@begin {{.ObjectTable.Name}}
{{- range tableRows .ObjectTable}}
    {{.}}
{{- end}}
@end
*/

/* Source for {{.ControllerTable.Name}}Values.lut.h
@begin {{.ControllerTable.Name}}
{{- range tableRows .ControllerTable}}
    {{.}}
{{- end}}
@end
*/
`

const lookupPostscript = ``
