// Code generated by ent, DO NOT EDIT.

package translationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldID, id))
}

// SourceHash applies equality check predicate on the "source_hash" field. It's identical to SourceHashEQ.
func SourceHash(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldSourceHash, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldTargetLang, v))
}

// TranslatedText applies equality check predicate on the "translated_text" field. It's identical to TranslatedTextEQ.
func TranslatedText(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldTranslatedText, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldProvider, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldAccessCount, v))
}

// LastAccessed applies equality check predicate on the "last_accessed" field. It's identical to LastAccessedEQ.
func LastAccessed(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldLastAccessed, v))
}

// SourceHashEQ applies the EQ predicate on the "source_hash" field.
func SourceHashEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldSourceHash, v))
}

// SourceHashNEQ applies the NEQ predicate on the "source_hash" field.
func SourceHashNEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldSourceHash, v))
}

// SourceHashIn applies the In predicate on the "source_hash" field.
func SourceHashIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldSourceHash, vs...))
}

// SourceHashNotIn applies the NotIn predicate on the "source_hash" field.
func SourceHashNotIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldSourceHash, vs...))
}

// SourceHashGT applies the GT predicate on the "source_hash" field.
func SourceHashGT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldSourceHash, v))
}

// SourceHashGTE applies the GTE predicate on the "source_hash" field.
func SourceHashGTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldSourceHash, v))
}

// SourceHashLT applies the LT predicate on the "source_hash" field.
func SourceHashLT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldSourceHash, v))
}

// SourceHashLTE applies the LTE predicate on the "source_hash" field.
func SourceHashLTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldSourceHash, v))
}

// SourceHashContains applies the Contains predicate on the "source_hash" field.
func SourceHashContains(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContains(FieldSourceHash, v))
}

// SourceHashHasPrefix applies the HasPrefix predicate on the "source_hash" field.
func SourceHashHasPrefix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasPrefix(FieldSourceHash, v))
}

// SourceHashHasSuffix applies the HasSuffix predicate on the "source_hash" field.
func SourceHashHasSuffix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasSuffix(FieldSourceHash, v))
}

// SourceHashEqualFold applies the EqualFold predicate on the "source_hash" field.
func SourceHashEqualFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEqualFold(FieldSourceHash, v))
}

// SourceHashContainsFold applies the ContainsFold predicate on the "source_hash" field.
func SourceHashContainsFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContainsFold(FieldSourceHash, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContainsFold(FieldTargetLang, v))
}

// TranslatedTextEQ applies the EQ predicate on the "translated_text" field.
func TranslatedTextEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldTranslatedText, v))
}

// TranslatedTextNEQ applies the NEQ predicate on the "translated_text" field.
func TranslatedTextNEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldTranslatedText, v))
}

// TranslatedTextIn applies the In predicate on the "translated_text" field.
func TranslatedTextIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldTranslatedText, vs...))
}

// TranslatedTextNotIn applies the NotIn predicate on the "translated_text" field.
func TranslatedTextNotIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldTranslatedText, vs...))
}

// TranslatedTextGT applies the GT predicate on the "translated_text" field.
func TranslatedTextGT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldTranslatedText, v))
}

// TranslatedTextGTE applies the GTE predicate on the "translated_text" field.
func TranslatedTextGTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldTranslatedText, v))
}

// TranslatedTextLT applies the LT predicate on the "translated_text" field.
func TranslatedTextLT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldTranslatedText, v))
}

// TranslatedTextLTE applies the LTE predicate on the "translated_text" field.
func TranslatedTextLTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldTranslatedText, v))
}

// TranslatedTextContains applies the Contains predicate on the "translated_text" field.
func TranslatedTextContains(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContains(FieldTranslatedText, v))
}

// TranslatedTextHasPrefix applies the HasPrefix predicate on the "translated_text" field.
func TranslatedTextHasPrefix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasPrefix(FieldTranslatedText, v))
}

// TranslatedTextHasSuffix applies the HasSuffix predicate on the "translated_text" field.
func TranslatedTextHasSuffix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasSuffix(FieldTranslatedText, v))
}

// TranslatedTextEqualFold applies the EqualFold predicate on the "translated_text" field.
func TranslatedTextEqualFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEqualFold(FieldTranslatedText, v))
}

// TranslatedTextContainsFold applies the ContainsFold predicate on the "translated_text" field.
func TranslatedTextContainsFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContainsFold(FieldTranslatedText, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldContainsFold(FieldProvider, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldAccessCount, v))
}

// LastAccessedEQ applies the EQ predicate on the "last_accessed" field.
func LastAccessedEQ(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldEQ(FieldLastAccessed, v))
}

// LastAccessedNEQ applies the NEQ predicate on the "last_accessed" field.
func LastAccessedNEQ(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNEQ(FieldLastAccessed, v))
}

// LastAccessedIn applies the In predicate on the "last_accessed" field.
func LastAccessedIn(vs ...time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldIn(FieldLastAccessed, vs...))
}

// LastAccessedNotIn applies the NotIn predicate on the "last_accessed" field.
func LastAccessedNotIn(vs ...time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldNotIn(FieldLastAccessed, vs...))
}

// LastAccessedGT applies the GT predicate on the "last_accessed" field.
func LastAccessedGT(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGT(FieldLastAccessed, v))
}

// LastAccessedGTE applies the GTE predicate on the "last_accessed" field.
func LastAccessedGTE(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldGTE(FieldLastAccessed, v))
}

// LastAccessedLT applies the LT predicate on the "last_accessed" field.
func LastAccessedLT(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLT(FieldLastAccessed, v))
}

// LastAccessedLTE applies the LTE predicate on the "last_accessed" field.
func LastAccessedLTE(v time.Time) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.FieldLTE(FieldLastAccessed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranslationRecord) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranslationRecord) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranslationRecord) predicate.TranslationRecord {
	return predicate.TranslationRecord(sql.NotPredicates(p))
}
