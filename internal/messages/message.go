package messages

const (
	prefixKey        = "comandante"
	MessagePrefixKey = prefixKey + ".msg"
)

// Built-in command output
const (
	MsgVersionKey     = MessagePrefixKey + ".version"
	MsgAuthorKey      = MessagePrefixKey + ".author"
	MsgDocKey         = MessagePrefixKey + ".doc"
	MsgInfoKey        = MessagePrefixKey + ".info"
	MsgCommandsKey    = MessagePrefixKey + ".commands"
	MsgUsageHeaderKey = MessagePrefixKey + ".usage_header"
	MsgUsageEntryKey  = MessagePrefixKey + ".usage_entry"
	MsgNoUsageKey     = MessagePrefixKey + ".no_usage"
)

// Built-in command descriptions
const (
	MsgUsageVersionKey     = MessagePrefixKey + ".usage_version"
	MsgUsageAuthorKey      = MessagePrefixKey + ".usage_author"
	MsgUsageDocKey         = MessagePrefixKey + ".usage_doc"
	MsgUsageInfoKey        = MessagePrefixKey + ".usage_info"
	MsgUsageListCommandKey = MessagePrefixKey + ".usage_list_command"
	MsgUsageListUsageKey   = MessagePrefixKey + ".usage_list_usage"
	MsgUsageListDescKey    = MessagePrefixKey + ".usage_list_desc"
	MsgUsageListAscKey     = MessagePrefixKey + ".usage_list_asc"
)
