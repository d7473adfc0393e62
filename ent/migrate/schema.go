// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AliasColumns holds the columns for the "alias" table.
	AliasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "alias", Type: field.TypeString},
		{Name: "command_type", Type: field.TypeEnum, Enums: []string{"text", "action", "command", "counter"}, Default: "command"},
		{Name: "response_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_command", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "last_used", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AliasTable holds the schema information for the "alias" table.
	AliasTable = &schema.Table{
		Name:       "alias",
		Columns:    AliasColumns,
		PrimaryKey: []*schema.Column{AliasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alias_entity_id_alias",
				Unique:  false,
				Columns: []*schema.Column{AliasColumns[1], AliasColumns[2]},
			},
			{
				Name:    "alias_entity_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AliasColumns[1], AliasColumns[11]},
			},
		},
	}
	// BotScoresColumns holds the columns for the "bot_scores" table.
	BotScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "overall", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeString, Size: 1},
		{Name: "size_category", Type: field.TypeEnum, Enums: []string{"small", "medium", "large"}},
		{Name: "bad_actor_score", Type: field.TypeFloat64},
		{Name: "reputation_score", Type: field.TypeFloat64},
		{Name: "security_score", Type: field.TypeFloat64},
		{Name: "ai_behavioral_score", Type: field.TypeFloat64},
		{Name: "weights", Type: field.TypeJSON},
		{Name: "calculated_at", Type: field.TypeTime},
		{Name: "next_recalculation", Type: field.TypeTime},
		{Name: "community_id", Type: field.TypeString, Unique: true},
	}
	// BotScoresTable holds the schema information for the "bot_scores" table.
	BotScoresTable = &schema.Table{
		Name:       "bot_scores",
		Columns:    BotScoresColumns,
		PrimaryKey: []*schema.Column{BotScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bot_scores_communities_bot_score",
				Columns:    []*schema.Column{BotScoresColumns[11]},
				RefColumns: []*schema.Column{CommunitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CommunitiesColumns holds the columns for the "communities" table.
	CommunitiesColumns = []*schema.Column{
		{Name: "community_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CommunitiesTable holds the schema information for the "communities" table.
	CommunitiesTable = &schema.Table{
		Name:       "communities",
		Columns:    CommunitiesColumns,
		PrimaryKey: []*schema.Column{CommunitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "community_owner_id",
				Unique:  false,
				Columns: []*schema.Column{CommunitiesColumns[2]},
			},
		},
	}
	// GatewaysColumns holds the columns for the "gateways" table.
	GatewaysColumns = []*schema.Column{
		{Name: "gateway_id", Type: field.TypeString, Unique: true},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"twitch", "discord", "slack", "kick", "youtube"}},
		{Name: "server_id", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString},
		{Name: "activation_code", Type: field.TypeString},
		{Name: "activated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "community_id", Type: field.TypeString},
	}
	// GatewaysTable holds the schema information for the "gateways" table.
	GatewaysTable = &schema.Table{
		Name:       "gateways",
		Columns:    GatewaysColumns,
		PrimaryKey: []*schema.Column{GatewaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gateways_communities_gateways",
				Columns:    []*schema.Column{GatewaysColumns[8]},
				RefColumns: []*schema.Column{CommunitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "gateway_platform_server_id_channel_id",
				Unique:  true,
				Columns: []*schema.Column{GatewaysColumns[1], GatewaysColumns[2], GatewaysColumns[3]},
			},
			{
				Name:    "gateway_community_id",
				Unique:  false,
				Columns: []*schema.Column{GatewaysColumns[8]},
			},
			{
				Name:    "gateway_activation_code",
				Unique:  false,
				Columns: []*schema.Column{GatewaysColumns[4]},
			},
		},
	}
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "moderator", "member", "visitor"}, Default: "member"},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "community_id", Type: field.TypeString},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "members_communities_members",
				Columns:    []*schema.Column{MembersColumns[6]},
				RefColumns: []*schema.Column{CommunitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "member_community_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MembersColumns[6], MembersColumns[1]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "community_id", Type: field.TypeString, Nullable: true},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"twitch", "discord", "slack", "kick", "youtube"}},
		{Name: "user_id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "message_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "resolving", "dispatching", "collecting", "completed", "failed", "rejected"}, Default: "received"},
		{Name: "modules_invoked", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_community_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[10]},
			},
			{
				Name:    "sessionrecord_status",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[7]},
			},
		},
	}
	// TranslationRecordsColumns holds the columns for the "translation_records" table.
	TranslationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "source_lang", Type: field.TypeString},
		{Name: "target_lang", Type: field.TypeString},
		{Name: "translated_text", Type: field.TypeString, Size: 2147483647},
		{Name: "provider", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "access_count", Type: field.TypeInt, Default: 1},
		{Name: "last_accessed", Type: field.TypeTime},
	}
	// TranslationRecordsTable holds the schema information for the "translation_records" table.
	TranslationRecordsTable = &schema.Table{
		Name:       "translation_records",
		Columns:    TranslationRecordsColumns,
		PrimaryKey: []*schema.Column{TranslationRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "translationrecord_access_count_last_accessed",
				Unique:  false,
				Columns: []*schema.Column{TranslationRecordsColumns[8], TranslationRecordsColumns[9]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "definition", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "community_id", Type: field.TypeString},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_communities_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[8]},
				RefColumns: []*schema.Column{CommunitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_community_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[8], WorkflowsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AliasTable,
		BotScoresTable,
		CommunitiesTable,
		GatewaysTable,
		MembersTable,
		SessionRecordsTable,
		TranslationRecordsTable,
		WorkflowsTable,
	}
)

func init() {
	BotScoresTable.ForeignKeys[0].RefTable = CommunitiesTable
	GatewaysTable.ForeignKeys[0].RefTable = CommunitiesTable
	MembersTable.ForeignKeys[0].RefTable = CommunitiesTable
	WorkflowsTable.ForeignKeys[0].RefTable = CommunitiesTable
}
