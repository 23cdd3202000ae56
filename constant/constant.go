package constant

// ProjectName is the binary and tool config namespace.
const ProjectName = "lolsettings"

// AssistantName names the per-user backup folder.
const AssistantName = "YiKkLOLSettingAssistant"

// EnvPrefix prefixes environment overrides of tool config keys.
const EnvPrefix = "LOLSETTINGS"
