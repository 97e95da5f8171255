// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PluginNotFoundId Id = iota + 1
	BindingNotFoundId
	SignatureErrorId
	HandlerBindErrorId
	ConfigLoadFailedId
	ScaffoldTargetExistsId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pluginNotFoundIssue = &Issue{
		id: PluginNotFoundId,
		mdMsg: `
# Plugin not found!

The script asked for a plugin that is not registered in this process.

## Things you can try:
- List the plugins compiled into your script:
~~~
$ ./yourscript plugins
~~~

- Check for typos in the plugin name passed to WithPlugins
- Make sure the plugin package is imported; registration happens in
  its init function, so a missing import means a missing plugin:
~~~go
import _ "github.com/quill-sh/quill/plugins/builtin"
~~~`,
	}

	bindingNotFoundIssue = &Issue{
		id: BindingNotFoundId,
		mdMsg: `
# Binding not found!

A handler parameter or container lookup named a value that was never
bound.

## Things you can try:
- Check the spelling of the binding name; handler fields bind by their
  quill tag first, then by the kebab-cased field name
- Bind the value before the script runs:
~~~go
app.Container().Set("api-key", key)
~~~

- Mark the field optional when absence is acceptable:
~~~go
type Params struct {
    ApiKey string ` + "`quill:\"api-key,optional\"`" + `
}
~~~`,
	}

	signatureErrorIssue = &Issue{
		id: SignatureErrorId,
		mdMsg: `
# Invalid command signature!

A signature passed to Main or Command could not be parsed.

## Signature grammar:
- Leading bare words name the command path
- ` + "`<name>`" + ` declares a required argument, ` + "`[name]`" + ` an optional one
- A trailing ` + "`...`" + ` on the last argument collects the remaining values
- ` + "`[--flag]`" + ` is a boolean flag, ` + "`[-f|--flag]`" + ` adds a short alias
- ` + "`[--flag=value]`" + ` infers the type from its default
- ` + "`[--flag=<int>]`" + ` declares a typed flag, ` + "`--flag=<int>`" + ` a required one

## Example:
~~~go
app.Command("db migrate <version> [targets...] [--dry-run]", handler)
~~~`,
	}

	handlerBindErrorIssue = &Issue{
		id: HandlerBindErrorId,
		mdMsg: `
# Handler binding failed!

A handler's input struct could not be populated from the command line
and the container.

## Common causes:
- A field names a binding that does not exist (see the error message)
- A bound value's type does not match the field's type
- The handler's shape is not supported

## Supported handler shapes:
~~~go
func(ctx context.Context, in Params) error
func(in Params) (Result, error)
func(ctx context.Context) error
func() error
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the quill configuration file.

## Configuration file locations:
- Linux: ~/.config/quill/config.cue
- macOS: ~/Library/Application Support/quill/config.cue
- Windows: %APPDATA%\quill\config.cue
- Project-local: ./quill.cue

## Things you can try:
- Check the configuration syntax against the schema
- Remove the config file to fall back to defaults
- Override a single value via the environment instead:
~~~
$ QUILL_LOG_LEVEL=debug ./yourscript
~~~

## Example configuration:
~~~cue
verbose: false

log: {
	level:  "info"
	format: "text"
}

ui: {
	theme: "charm"
}
~~~`,
	}

	scaffoldTargetExistsIssue = &Issue{
		id: ScaffoldTargetExistsId,
		mdMsg: `
# Target already exists!

quill init refused to overwrite an existing file.

## Things you can try:
- Pick a different script name:
~~~
$ quill init --name otherscript
~~~

- Or overwrite deliberately:
~~~
$ quill init --force
~~~`,
	}

	issues = map[Id]*Issue{
		pluginNotFoundIssue.Id():       pluginNotFoundIssue,
		bindingNotFoundIssue.Id():      bindingNotFoundIssue,
		signatureErrorIssue.Id():       signatureErrorIssue,
		handlerBindErrorIssue.Id():     handlerBindErrorIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		scaffoldTargetExistsIssue.Id(): scaffoldTargetExistsIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
