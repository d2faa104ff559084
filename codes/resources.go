package codes

// AdministrativeGender is the gender of a person used for administrative purposes.
// Code system: http://hl7.org/fhir/administrative-gender
type AdministrativeGender string

const (
	AdministrativeGenderMale    AdministrativeGender = "male"
	AdministrativeGenderFemale  AdministrativeGender = "female"
	AdministrativeGenderOther   AdministrativeGender = "other"
	AdministrativeGenderUnknown AdministrativeGender = "unknown"
)

// AdministrativeGenders is the closed set of AdministrativeGender codes.
var AdministrativeGenders = NewSet("AdministrativeGender", "http://hl7.org/fhir/administrative-gender",
	AdministrativeGenderMale, AdministrativeGenderFemale, AdministrativeGenderOther, AdministrativeGenderUnknown,
)

// ParseAdministrativeGender returns the AdministrativeGender for s, or ("", false) if s is not a known code.
func ParseAdministrativeGender(s string) (AdministrativeGender, bool) { return AdministrativeGenders.Parse(s) }

func (c AdministrativeGender) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c AdministrativeGender) Known() bool { return AdministrativeGenders.Contains(c) }

// System returns the code system URL.
func (AdministrativeGender) System() string { return AdministrativeGenders.System() }

// LinkType is the type of link between two Patient resources.
// Code system: http://hl7.org/fhir/link-type
type LinkType string

const (
	LinkTypeReplacedBy LinkType = "replaced-by"
	LinkTypeReplaces   LinkType = "replaces"
	LinkTypeRefer      LinkType = "refer"
	LinkTypeSeeAlso    LinkType = "seealso"
)

// LinkTypes is the closed set of LinkType codes.
var LinkTypes = NewSet("LinkType", "http://hl7.org/fhir/link-type",
	LinkTypeReplacedBy, LinkTypeReplaces, LinkTypeRefer, LinkTypeSeeAlso,
)

// ParseLinkType returns the LinkType for s, or ("", false) if s is not a known code.
func ParseLinkType(s string) (LinkType, bool) { return LinkTypes.Parse(s) }

func (c LinkType) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c LinkType) Known() bool { return LinkTypes.Contains(c) }

// System returns the code system URL.
func (LinkType) System() string { return LinkTypes.System() }

// ConditionClinicalStatus is the clinical status of a condition.
// Code system: http://terminology.hl7.org/CodeSystem/condition-clinical
type ConditionClinicalStatus string

const (
	ConditionClinicalStatusActive     ConditionClinicalStatus = "active"
	ConditionClinicalStatusRecurrence ConditionClinicalStatus = "recurrence"
	ConditionClinicalStatusRelapse    ConditionClinicalStatus = "relapse"
	ConditionClinicalStatusInactive   ConditionClinicalStatus = "inactive"
	ConditionClinicalStatusRemission  ConditionClinicalStatus = "remission"
	ConditionClinicalStatusResolved   ConditionClinicalStatus = "resolved"
)

// ConditionClinicalStatusSet is the closed set of ConditionClinicalStatus codes.
var ConditionClinicalStatusSet = NewSet("ConditionClinicalStatus", "http://terminology.hl7.org/CodeSystem/condition-clinical",
	ConditionClinicalStatusActive, ConditionClinicalStatusRecurrence, ConditionClinicalStatusRelapse, ConditionClinicalStatusInactive,
	ConditionClinicalStatusRemission, ConditionClinicalStatusResolved,
)

// ParseConditionClinicalStatus returns the ConditionClinicalStatus for s, or ("", false) if s is not a known code.
func ParseConditionClinicalStatus(s string) (ConditionClinicalStatus, bool) { return ConditionClinicalStatusSet.Parse(s) }

func (c ConditionClinicalStatus) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c ConditionClinicalStatus) Known() bool { return ConditionClinicalStatusSet.Contains(c) }

// System returns the code system URL.
func (ConditionClinicalStatus) System() string { return ConditionClinicalStatusSet.System() }

// ConditionVerificationStatus is the verification status of a condition.
// Code system: http://terminology.hl7.org/CodeSystem/condition-ver-status
type ConditionVerificationStatus string

const (
	ConditionVerificationStatusUnconfirmed    ConditionVerificationStatus = "unconfirmed"
	ConditionVerificationStatusProvisional    ConditionVerificationStatus = "provisional"
	ConditionVerificationStatusDifferential   ConditionVerificationStatus = "differential"
	ConditionVerificationStatusConfirmed      ConditionVerificationStatus = "confirmed"
	ConditionVerificationStatusRefuted        ConditionVerificationStatus = "refuted"
	ConditionVerificationStatusEnteredInError ConditionVerificationStatus = "entered-in-error"
)

// ConditionVerificationStatusSet is the closed set of ConditionVerificationStatus codes.
var ConditionVerificationStatusSet = NewSet("ConditionVerificationStatus", "http://terminology.hl7.org/CodeSystem/condition-ver-status",
	ConditionVerificationStatusUnconfirmed, ConditionVerificationStatusProvisional, ConditionVerificationStatusDifferential, ConditionVerificationStatusConfirmed,
	ConditionVerificationStatusRefuted, ConditionVerificationStatusEnteredInError,
)

// ParseConditionVerificationStatus returns the ConditionVerificationStatus for s, or ("", false) if s is not a known code.
func ParseConditionVerificationStatus(s string) (ConditionVerificationStatus, bool) { return ConditionVerificationStatusSet.Parse(s) }

func (c ConditionVerificationStatus) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c ConditionVerificationStatus) Known() bool { return ConditionVerificationStatusSet.Contains(c) }

// System returns the code system URL.
func (ConditionVerificationStatus) System() string { return ConditionVerificationStatusSet.System() }

// ClaimUse says whether a claim is for services rendered or a proposal.
// Code system: http://hl7.org/fhir/claim-use
type ClaimUse string

const (
	ClaimUseClaim            ClaimUse = "claim"
	ClaimUsePreauthorization ClaimUse = "preauthorization"
	ClaimUsePredetermination ClaimUse = "predetermination"
)

// ClaimUses is the closed set of ClaimUse codes.
var ClaimUses = NewSet("ClaimUse", "http://hl7.org/fhir/claim-use",
	ClaimUseClaim, ClaimUsePreauthorization, ClaimUsePredetermination,
)

// ParseClaimUse returns the ClaimUse for s, or ("", false) if s is not a known code.
func ParseClaimUse(s string) (ClaimUse, bool) { return ClaimUses.Parse(s) }

func (c ClaimUse) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c ClaimUse) Known() bool { return ClaimUses.Contains(c) }

// System returns the code system URL.
func (ClaimUse) System() string { return ClaimUses.System() }

// FinancialResourceStatus is the status of a financial resource.
// Code system: http://hl7.org/fhir/fm-status
type FinancialResourceStatus string

const (
	FinancialResourceStatusActive         FinancialResourceStatus = "active"
	FinancialResourceStatusCancelled      FinancialResourceStatus = "cancelled"
	FinancialResourceStatusDraft          FinancialResourceStatus = "draft"
	FinancialResourceStatusEnteredInError FinancialResourceStatus = "entered-in-error"
)

// FinancialResourceStatusSet is the closed set of FinancialResourceStatus codes.
var FinancialResourceStatusSet = NewSet("FinancialResourceStatus", "http://hl7.org/fhir/fm-status",
	FinancialResourceStatusActive, FinancialResourceStatusCancelled, FinancialResourceStatusDraft, FinancialResourceStatusEnteredInError,
)

// ParseFinancialResourceStatus returns the FinancialResourceStatus for s, or ("", false) if s is not a known code.
func ParseFinancialResourceStatus(s string) (FinancialResourceStatus, bool) { return FinancialResourceStatusSet.Parse(s) }

func (c FinancialResourceStatus) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c FinancialResourceStatus) Known() bool { return FinancialResourceStatusSet.Contains(c) }

// System returns the code system URL.
func (FinancialResourceStatus) System() string { return FinancialResourceStatusSet.System() }

// AdverseEventActuality says whether an adverse event happened or could have happened.
// Code system: http://hl7.org/fhir/adverse-event-actuality
type AdverseEventActuality string

const (
	AdverseEventActualityActual    AdverseEventActuality = "actual"
	AdverseEventActualityPotential AdverseEventActuality = "potential"
)

// AdverseEventActualities is the closed set of AdverseEventActuality codes.
var AdverseEventActualities = NewSet("AdverseEventActuality", "http://hl7.org/fhir/adverse-event-actuality",
	AdverseEventActualityActual, AdverseEventActualityPotential,
)

// ParseAdverseEventActuality returns the AdverseEventActuality for s, or ("", false) if s is not a known code.
func ParseAdverseEventActuality(s string) (AdverseEventActuality, bool) { return AdverseEventActualities.Parse(s) }

func (c AdverseEventActuality) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c AdverseEventActuality) Known() bool { return AdverseEventActualities.Contains(c) }

// System returns the code system URL.
func (AdverseEventActuality) System() string { return AdverseEventActualities.System() }

// BundleType is the purpose of a Bundle.
// Code system: http://hl7.org/fhir/bundle-type
type BundleType string

const (
	BundleTypeDocument            BundleType = "document"
	BundleTypeMessage             BundleType = "message"
	BundleTypeTransaction         BundleType = "transaction"
	BundleTypeTransactionResponse BundleType = "transaction-response"
	BundleTypeBatch               BundleType = "batch"
	BundleTypeBatchResponse       BundleType = "batch-response"
	BundleTypeHistory             BundleType = "history"
	BundleTypeSearchset           BundleType = "searchset"
	BundleTypeCollection          BundleType = "collection"
)

// BundleTypes is the closed set of BundleType codes.
var BundleTypes = NewSet("BundleType", "http://hl7.org/fhir/bundle-type",
	BundleTypeDocument, BundleTypeMessage, BundleTypeTransaction, BundleTypeTransactionResponse,
	BundleTypeBatch, BundleTypeBatchResponse, BundleTypeHistory, BundleTypeSearchset,
	BundleTypeCollection,
)

// ParseBundleType returns the BundleType for s, or ("", false) if s is not a known code.
func ParseBundleType(s string) (BundleType, bool) { return BundleTypes.Parse(s) }

func (c BundleType) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c BundleType) Known() bool { return BundleTypes.Contains(c) }

// System returns the code system URL.
func (BundleType) System() string { return BundleTypes.System() }

// HTTPVerb is the HTTP verb of a Bundle entry request.
// Code system: http://hl7.org/fhir/http-verb
type HTTPVerb string

const (
	HTTPVerbGet    HTTPVerb = "GET"
	HTTPVerbHead   HTTPVerb = "HEAD"
	HTTPVerbPost   HTTPVerb = "POST"
	HTTPVerbPut    HTTPVerb = "PUT"
	HTTPVerbDelete HTTPVerb = "DELETE"
	HTTPVerbPatch  HTTPVerb = "PATCH"
)

// HTTPVerbs is the closed set of HTTPVerb codes.
var HTTPVerbs = NewSet("HTTPVerb", "http://hl7.org/fhir/http-verb",
	HTTPVerbGet, HTTPVerbHead, HTTPVerbPost, HTTPVerbPut,
	HTTPVerbDelete, HTTPVerbPatch,
)

// ParseHTTPVerb returns the HTTPVerb for s, or ("", false) if s is not a known code.
func ParseHTTPVerb(s string) (HTTPVerb, bool) { return HTTPVerbs.Parse(s) }

func (c HTTPVerb) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c HTTPVerb) Known() bool { return HTTPVerbs.Contains(c) }

// System returns the code system URL.
func (HTTPVerb) System() string { return HTTPVerbs.System() }

// SearchEntryMode is why an entry is in a search set.
// Code system: http://hl7.org/fhir/search-entry-mode
type SearchEntryMode string

const (
	SearchEntryModeMatch   SearchEntryMode = "match"
	SearchEntryModeInclude SearchEntryMode = "include"
	SearchEntryModeOutcome SearchEntryMode = "outcome"
)

// SearchEntryModes is the closed set of SearchEntryMode codes.
var SearchEntryModes = NewSet("SearchEntryMode", "http://hl7.org/fhir/search-entry-mode",
	SearchEntryModeMatch, SearchEntryModeInclude, SearchEntryModeOutcome,
)

// ParseSearchEntryMode returns the SearchEntryMode for s, or ("", false) if s is not a known code.
func ParseSearchEntryMode(s string) (SearchEntryMode, bool) { return SearchEntryModes.Parse(s) }

func (c SearchEntryMode) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c SearchEntryMode) Known() bool { return SearchEntryModes.Contains(c) }

// System returns the code system URL.
func (SearchEntryMode) System() string { return SearchEntryModes.System() }
