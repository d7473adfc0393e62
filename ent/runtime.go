// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/waddlebot/waddlebot-core/ent/alias"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/schema"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aliasFields := schema.Alias{}.Fields()
	_ = aliasFields
	// aliasDescCreatedAt is the schema descriptor for created_at field.
	aliasDescCreatedAt := aliasFields[6].Descriptor()
	// alias.DefaultCreatedAt holds the default value on creation for the created_at field.
	alias.DefaultCreatedAt = aliasDescCreatedAt.Default.(func() time.Time)
	// aliasDescUpdatedAt is the schema descriptor for updated_at field.
	aliasDescUpdatedAt := aliasFields[7].Descriptor()
	// alias.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alias.DefaultUpdatedAt = aliasDescUpdatedAt.Default.(func() time.Time)
	// alias.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alias.UpdateDefaultUpdatedAt = aliasDescUpdatedAt.UpdateDefault.(func() time.Time)
	// aliasDescUsageCount is the schema descriptor for usage_count field.
	aliasDescUsageCount := aliasFields[8].Descriptor()
	// alias.DefaultUsageCount holds the default value on creation for the usage_count field.
	alias.DefaultUsageCount = aliasDescUsageCount.Default.(int)
	// aliasDescIsActive is the schema descriptor for is_active field.
	aliasDescIsActive := aliasFields[10].Descriptor()
	// alias.DefaultIsActive holds the default value on creation for the is_active field.
	alias.DefaultIsActive = aliasDescIsActive.Default.(bool)
	botscoreFields := schema.BotScore{}.Fields()
	_ = botscoreFields
	// botscoreDescGrade is the schema descriptor for grade field.
	botscoreDescGrade := botscoreFields[2].Descriptor()
	// botscore.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	botscore.GradeValidator = botscoreDescGrade.Validators[0].(func(string) error)
	// botscoreDescCalculatedAt is the schema descriptor for calculated_at field.
	botscoreDescCalculatedAt := botscoreFields[9].Descriptor()
	// botscore.DefaultCalculatedAt holds the default value on creation for the calculated_at field.
	botscore.DefaultCalculatedAt = botscoreDescCalculatedAt.Default.(func() time.Time)
	communityFields := schema.Community{}.Fields()
	_ = communityFields
	// communityDescCreatedAt is the schema descriptor for created_at field.
	communityDescCreatedAt := communityFields[4].Descriptor()
	// community.DefaultCreatedAt holds the default value on creation for the created_at field.
	community.DefaultCreatedAt = communityDescCreatedAt.Default.(func() time.Time)
	// communityDescUpdatedAt is the schema descriptor for updated_at field.
	communityDescUpdatedAt := communityFields[5].Descriptor()
	// community.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	community.DefaultUpdatedAt = communityDescUpdatedAt.Default.(func() time.Time)
	// community.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	community.UpdateDefaultUpdatedAt = communityDescUpdatedAt.UpdateDefault.(func() time.Time)
	gatewayFields := schema.Gateway{}.Fields()
	_ = gatewayFields
	// gatewayDescActivated is the schema descriptor for activated field.
	gatewayDescActivated := gatewayFields[6].Descriptor()
	// gateway.DefaultActivated holds the default value on creation for the activated field.
	gateway.DefaultActivated = gatewayDescActivated.Default.(bool)
	// gatewayDescCreatedAt is the schema descriptor for created_at field.
	gatewayDescCreatedAt := gatewayFields[7].Descriptor()
	// gateway.DefaultCreatedAt holds the default value on creation for the created_at field.
	gateway.DefaultCreatedAt = gatewayDescCreatedAt.Default.(func() time.Time)
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescJoinedAt is the schema descriptor for joined_at field.
	memberDescJoinedAt := memberFields[4].Descriptor()
	// member.DefaultJoinedAt holds the default value on creation for the joined_at field.
	member.DefaultJoinedAt = memberDescJoinedAt.Default.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescCreatedAt is the schema descriptor for created_at field.
	sessionrecordDescCreatedAt := sessionrecordFields[10].Descriptor()
	// sessionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrecord.DefaultCreatedAt = sessionrecordDescCreatedAt.Default.(func() time.Time)
	translationrecordFields := schema.TranslationRecord{}.Fields()
	_ = translationrecordFields
	// translationrecordDescSourceHash is the schema descriptor for source_hash field.
	translationrecordDescSourceHash := translationrecordFields[0].Descriptor()
	// translationrecord.SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	translationrecord.SourceHashValidator = translationrecordDescSourceHash.Validators[0].(func(string) error)
	// translationrecordDescCreatedAt is the schema descriptor for created_at field.
	translationrecordDescCreatedAt := translationrecordFields[6].Descriptor()
	// translationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	translationrecord.DefaultCreatedAt = translationrecordDescCreatedAt.Default.(func() time.Time)
	// translationrecordDescAccessCount is the schema descriptor for access_count field.
	translationrecordDescAccessCount := translationrecordFields[7].Descriptor()
	// translationrecord.DefaultAccessCount holds the default value on creation for the access_count field.
	translationrecord.DefaultAccessCount = translationrecordDescAccessCount.Default.(int)
	// translationrecordDescLastAccessed is the schema descriptor for last_accessed field.
	translationrecordDescLastAccessed := translationrecordFields[8].Descriptor()
	// translationrecord.DefaultLastAccessed holds the default value on creation for the last_accessed field.
	translationrecord.DefaultLastAccessed = translationrecordDescLastAccessed.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescIsActive is the schema descriptor for is_active field.
	workflowDescIsActive := workflowFields[4].Descriptor()
	// workflow.DefaultIsActive holds the default value on creation for the is_active field.
	workflow.DefaultIsActive = workflowDescIsActive.Default.(bool)
	// workflowDescVersion is the schema descriptor for version field.
	workflowDescVersion := workflowFields[6].Descriptor()
	// workflow.DefaultVersion holds the default value on creation for the version field.
	workflow.DefaultVersion = workflowDescVersion.Default.(int)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[7].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[8].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
}
