package tagkit

import "github.com/vango-go/tagkit/pkg/tag"

// Element kinds, re-exported from package tag.
const (
	A          = tag.A
	Abbr       = tag.Abbr
	Acronym    = tag.Acronym
	Address    = tag.Address
	Applet     = tag.Applet
	Area       = tag.Area
	Article    = tag.Article
	Aside      = tag.Aside
	Audio      = tag.Audio
	B          = tag.B
	Base       = tag.Base
	Basefont   = tag.Basefont
	Bdi        = tag.Bdi
	Bdo        = tag.Bdo
	Big        = tag.Big
	Blockquote = tag.Blockquote
	Body       = tag.Body
	Br         = tag.Br
	Button     = tag.Button
	Canvas     = tag.Canvas
	Caption    = tag.Caption
	Center     = tag.Center
	Cite       = tag.Cite
	Code       = tag.Code
	Col        = tag.Col
	Colgroup   = tag.Colgroup
	Data       = tag.Data
	Datalist   = tag.Datalist
	Dd         = tag.Dd
	Del        = tag.Del
	Details    = tag.Details
	Dfn        = tag.Dfn
	Dialog     = tag.Dialog
	Dir        = tag.Dir
	Div        = tag.Div
	Dl         = tag.Dl
	Dt         = tag.Dt
	Em         = tag.Em
	Embed      = tag.Embed
	Fieldset   = tag.Fieldset
	Figcaption = tag.Figcaption
	Figure     = tag.Figure
	Font       = tag.Font
	Footer     = tag.Footer
	Form       = tag.Form
	Frame      = tag.Frame
	Frameset   = tag.Frameset
	H1         = tag.H1
	H2         = tag.H2
	H3         = tag.H3
	H4         = tag.H4
	H5         = tag.H5
	H6         = tag.H6
	Head       = tag.Head
	Header     = tag.Header
	Hr         = tag.Hr
	Html       = tag.Html
	I          = tag.I
	Iframe     = tag.Iframe
	Img        = tag.Img
	Input      = tag.Input
	Ins        = tag.Ins
	Isindex    = tag.Isindex
	Kbd        = tag.Kbd
	Label      = tag.Label
	Legend     = tag.Legend
	Li         = tag.Li
	Link       = tag.Link
	Main       = tag.Main
	Map        = tag.Map
	Mark       = tag.Mark
	Marquee    = tag.Marquee
	Menu       = tag.Menu
	Meta       = tag.Meta
	Meter      = tag.Meter
	Nav        = tag.Nav
	Noframes   = tag.Noframes
	Noscript   = tag.Noscript
	Object     = tag.Object
	Ol         = tag.Ol
	Optgroup   = tag.Optgroup
	Option     = tag.Option
	Output     = tag.Output
	P          = tag.P
	Param      = tag.Param
	Picture    = tag.Picture
	Pre        = tag.Pre
	Progress   = tag.Progress
	Q          = tag.Q
	Rp         = tag.Rp
	Rt         = tag.Rt
	Ruby       = tag.Ruby
	S          = tag.S
	Samp       = tag.Samp
	Script     = tag.Script
	Section    = tag.Section
	Select     = tag.Select
	Small      = tag.Small
	Source     = tag.Source
	Span       = tag.Span
	Strike     = tag.Strike
	Strong     = tag.Strong
	Style      = tag.Style
	Sub        = tag.Sub
	Summary    = tag.Summary
	Sup        = tag.Sup
	Svg        = tag.Svg
	Table      = tag.Table
	Tbody      = tag.Tbody
	Td         = tag.Td
	Template   = tag.Template
	Textarea   = tag.Textarea
	Tfoot      = tag.Tfoot
	Th         = tag.Th
	Thead      = tag.Thead
	Time       = tag.Time
	Title      = tag.Title
	Tr         = tag.Tr
	Track      = tag.Track
	Tt         = tag.Tt
	U          = tag.U
	Ul         = tag.Ul
	Var        = tag.Var
	Video      = tag.Video
	Wbr        = tag.Wbr
)
