package i18n

// M is a convenience type for placeholder maps used in translations.
// It maps placeholder names to their values.
type M map[string]any

// Message ids shipped in the built-in locales.
const (
	MsgNoNetwork     = "no_network"
	MsgRequiredField = "required_field"
	MsgUnknownError  = "unknown_error"
	MsgSuccess       = "success"
	MsgSending       = "sending"
	MsgDefaultTitle  = "default_title"
	MsgTitleWithApp  = "title_with_app"
	MsgSend          = "send"
	MsgCancel        = "cancel"
	MsgPlaceholder   = "placeholder"
)
