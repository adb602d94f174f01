//  This file is part of the eliona project.
//  Copyright © 2022 LEICOM iTEC AG. All Rights Reserved.
//  ______ _ _
// |  ____| (_)
// | |__  | |_  ___  _ __   __ _
// |  __| | | |/ _ \| '_ \ / _` |
// | |____| | | (_) | | | | (_| |
// |______|_|_|\___/|_| |_|\__,_|
//
//  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING
//  BUT NOT LIMITED  TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
//  NON INFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
//  DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ews

// Controlled vocabularies defined by the EWS XML schema. Values are the
// literal schema tokens; they go onto the wire unchanged.

// ResponseClass is the top-level status of a response message.
type ResponseClass string

const (
	ResponseClassSuccess ResponseClass = "Success"
	ResponseClassWarning ResponseClass = "Warning"
	ResponseClassError   ResponseClass = "Error"
)

// ResponseCode identifies the outcome of an operation.
type ResponseCode string

const (
	NoError ResponseCode = "NoError"

	ErrorAccessDenied                    ResponseCode = "ErrorAccessDenied"
	ErrorAccountDisabled                 ResponseCode = "ErrorAccountDisabled"
	ErrorAddressSpaceNotFound            ResponseCode = "ErrorAddressSpaceNotFound"
	ErrorADOperation                     ResponseCode = "ErrorADOperation"
	ErrorADUnavailable                   ResponseCode = "ErrorADUnavailable"
	ErrorAvailabilityConfigNotFound      ResponseCode = "ErrorAvailabilityConfigNotFound"
	ErrorCalendarFolderIsInvalidForCalendarView ResponseCode = "ErrorCalendarFolderIsInvalidForCalendarView"
	ErrorCannotEmptyFolder               ResponseCode = "ErrorCannotEmptyFolder"
	ErrorConnectionFailed                ResponseCode = "ErrorConnectionFailed"
	ErrorCorruptData                     ResponseCode = "ErrorCorruptData"
	ErrorCreateItemAccessDenied          ResponseCode = "ErrorCreateItemAccessDenied"
	ErrorDeleteItemsFailed               ResponseCode = "ErrorDeleteItemsFailed"
	ErrorDuplicateInputFolderNames       ResponseCode = "ErrorDuplicateInputFolderNames"
	ErrorEmailAddressMismatch            ResponseCode = "ErrorEmailAddressMismatch"
	ErrorFolderCorrupt                   ResponseCode = "ErrorFolderCorrupt"
	ErrorFolderNotFound                  ResponseCode = "ErrorFolderNotFound"
	ErrorFolderPropertyRequestFailed     ResponseCode = "ErrorFolderPropertyRequestFailed"
	ErrorFolderSave                      ResponseCode = "ErrorFolderSave"
	ErrorFolderSaveFailed                ResponseCode = "ErrorFolderSaveFailed"
	ErrorFreeBusyGenerationFailed        ResponseCode = "ErrorFreeBusyGenerationFailed"
	ErrorImpersonateUserDenied           ResponseCode = "ErrorImpersonateUserDenied"
	ErrorIncorrectSchemaVersion          ResponseCode = "ErrorIncorrectSchemaVersion"
	ErrorInsufficientResources           ResponseCode = "ErrorInsufficientResources"
	ErrorInternalServerError             ResponseCode = "ErrorInternalServerError"
	ErrorInternalServerTransientError    ResponseCode = "ErrorInternalServerTransientError"
	ErrorInvalidArgument                 ResponseCode = "ErrorInvalidArgument"
	ErrorInvalidFolderId                 ResponseCode = "ErrorInvalidFolderId"
	ErrorInvalidMailbox                  ResponseCode = "ErrorInvalidMailbox"
	ErrorInvalidOperation                ResponseCode = "ErrorInvalidOperation"
	ErrorInvalidRequest                  ResponseCode = "ErrorInvalidRequest"
	ErrorInvalidSmtpAddress              ResponseCode = "ErrorInvalidSmtpAddress"
	ErrorInvalidUserInfo                 ResponseCode = "ErrorInvalidUserInfo"
	ErrorItemCorrupt                     ResponseCode = "ErrorItemCorrupt"
	ErrorItemNotFound                    ResponseCode = "ErrorItemNotFound"
	ErrorItemPropertyRequestFailed       ResponseCode = "ErrorItemPropertyRequestFailed"
	ErrorItemSave                        ResponseCode = "ErrorItemSave"
	ErrorItemSavePropertyError           ResponseCode = "ErrorItemSavePropertyError"
	ErrorMailboxLogonFailed              ResponseCode = "ErrorMailboxLogonFailed"
	ErrorMailboxMoveInProgress           ResponseCode = "ErrorMailboxMoveInProgress"
	ErrorMailboxStoreUnavailable         ResponseCode = "ErrorMailboxStoreUnavailable"
	ErrorMailRecipientNotFound           ResponseCode = "ErrorMailRecipientNotFound"
	ErrorNameResolutionNoResults         ResponseCode = "ErrorNameResolutionNoResults"
	ErrorNonExistentMailbox              ResponseCode = "ErrorNonExistentMailbox"
	ErrorNotEnoughMemory                 ResponseCode = "ErrorNotEnoughMemory"
	ErrorProxyRequestNotAllowed          ResponseCode = "ErrorProxyRequestNotAllowed"
	ErrorQuotaExceeded                   ResponseCode = "ErrorQuotaExceeded"
	ErrorRequestAborted                  ResponseCode = "ErrorRequestAborted"
	ErrorRequestStreamTooBig             ResponseCode = "ErrorRequestStreamTooBig"
	ErrorSchemaValidation                ResponseCode = "ErrorSchemaValidation"
	ErrorServerBusy                      ResponseCode = "ErrorServerBusy"
	ErrorServiceDiscoveryFailed          ResponseCode = "ErrorServiceDiscoveryFailed"
	ErrorServiceUnavailable              ResponseCode = "ErrorServiceUnavailable"
	ErrorTimeoutExpired                  ResponseCode = "ErrorTimeoutExpired"
	ErrorTooManyObjectsOpened            ResponseCode = "ErrorTooManyObjectsOpened"
	ErrorUserConfigurationAlreadyExists  ResponseCode = "ErrorUserConfigurationAlreadyExists"
	ErrorUserConfigurationNotFound       ResponseCode = "ErrorUserConfigurationNotFound"
	ErrorWorkingHoursSaveFailed          ResponseCode = "ErrorWorkingHoursSaveFailed"
	ErrorWorkingHoursXmlMalformed        ResponseCode = "ErrorWorkingHoursXmlMalformed"
)

// OofState is the out-of-office state of a mailbox.
type OofState string

const (
	OofStateDisabled  OofState = "Disabled"
	OofStateEnabled   OofState = "Enabled"
	OofStateScheduled OofState = "Scheduled"
)

// ExternalAudience controls which external senders receive OOF replies.
type ExternalAudience string

const (
	ExternalAudienceNone  ExternalAudience = "None"
	ExternalAudienceKnown ExternalAudience = "Known"
	ExternalAudienceAll   ExternalAudience = "All"
)

// DistinguishedFolderID names a well-known mailbox folder.
type DistinguishedFolderID string

const (
	FolderCalendar                     DistinguishedFolderID = "calendar"
	FolderContacts                     DistinguishedFolderID = "contacts"
	FolderDeletedItems                 DistinguishedFolderID = "deleteditems"
	FolderDrafts                       DistinguishedFolderID = "drafts"
	FolderInbox                        DistinguishedFolderID = "inbox"
	FolderJournal                      DistinguishedFolderID = "journal"
	FolderNotes                        DistinguishedFolderID = "notes"
	FolderOutbox                       DistinguishedFolderID = "outbox"
	FolderSentItems                    DistinguishedFolderID = "sentitems"
	FolderTasks                        DistinguishedFolderID = "tasks"
	FolderMsgFolderRoot                DistinguishedFolderID = "msgfolderroot"
	FolderPublicFoldersRoot            DistinguishedFolderID = "publicfoldersroot"
	FolderRoot                         DistinguishedFolderID = "root"
	FolderJunkEmail                    DistinguishedFolderID = "junkemail"
	FolderSearchFolders                DistinguishedFolderID = "searchfolders"
	FolderVoiceMail                    DistinguishedFolderID = "voicemail"
	FolderRecoverableItemsRoot         DistinguishedFolderID = "recoverableitemsroot"
	FolderRecoverableItemsDeletions    DistinguishedFolderID = "recoverableitemsdeletions"
	FolderRecoverableItemsVersions     DistinguishedFolderID = "recoverableitemsversions"
	FolderRecoverableItemsPurges       DistinguishedFolderID = "recoverableitemspurges"
	FolderArchiveRoot                  DistinguishedFolderID = "archiveroot"
	FolderArchiveMsgFolderRoot         DistinguishedFolderID = "archivemsgfolderroot"
	FolderArchiveDeletedItems          DistinguishedFolderID = "archivedeleteditems"
	FolderArchiveInbox                 DistinguishedFolderID = "archiveinbox"
	FolderArchiveRecoverableItemsRoot  DistinguishedFolderID = "archiverecoverableitemsroot"
	FolderSyncIssues                   DistinguishedFolderID = "syncissues"
	FolderConflicts                    DistinguishedFolderID = "conflicts"
	FolderLocalFailures                DistinguishedFolderID = "localfailures"
	FolderServerFailures               DistinguishedFolderID = "serverfailures"
	FolderRecipientCache               DistinguishedFolderID = "recipientcache"
	FolderQuickContacts                DistinguishedFolderID = "quickcontacts"
	FolderConversationHistory          DistinguishedFolderID = "conversationhistory"
	FolderAdminAuditLogs               DistinguishedFolderID = "adminauditlogs"
	FolderToDoSearch                   DistinguishedFolderID = "todosearch"
	FolderMyContacts                   DistinguishedFolderID = "mycontacts"
	FolderDirectory                    DistinguishedFolderID = "directory"
	FolderIMContactList                DistinguishedFolderID = "imcontactlist"
	FolderPeopleConnect                DistinguishedFolderID = "peopleconnect"
	FolderFavorites                    DistinguishedFolderID = "favorites"
)

// UserConfigurationProperties selects which facets of a user configuration
// a Get operation returns.
type UserConfigurationProperties string

const (
	UserConfigPropertiesID         UserConfigurationProperties = "Id"
	UserConfigPropertiesDictionary UserConfigurationProperties = "Dictionary"
	UserConfigPropertiesXMLData    UserConfigurationProperties = "XmlData"
	UserConfigPropertiesBinaryData UserConfigurationProperties = "BinaryData"
	UserConfigPropertiesAll        UserConfigurationProperties = "All"
)

// UserPhotoSize is the requested-size token of a GetUserPhoto call.
type UserPhotoSize string

const (
	PhotoSizeHR48x48   UserPhotoSize = "HR48x48"
	PhotoSizeHR64x64   UserPhotoSize = "HR64x64"
	PhotoSizeHR96x96   UserPhotoSize = "HR96x96"
	PhotoSizeHR120x120 UserPhotoSize = "HR120x120"
	PhotoSizeHR240x240 UserPhotoSize = "HR240x240"
	PhotoSizeHR360x360 UserPhotoSize = "HR360x360"
	PhotoSizeHR432x432 UserPhotoSize = "HR432x432"
	PhotoSizeHR504x504 UserPhotoSize = "HR504x504"
	PhotoSizeHR648x648 UserPhotoSize = "HR648x648"
)

// Dimensions returns the pixel height and width a size token stands for.
// Unknown tokens fall back to the smallest size.
func (s UserPhotoSize) Dimensions() (height, width int) {
	switch s {
	case PhotoSizeHR64x64:
		return 64, 64
	case PhotoSizeHR96x96:
		return 96, 96
	case PhotoSizeHR120x120:
		return 120, 120
	case PhotoSizeHR240x240:
		return 240, 240
	case PhotoSizeHR360x360:
		return 360, 360
	case PhotoSizeHR432x432:
		return 432, 432
	case PhotoSizeHR504x504:
		return 504, 504
	case PhotoSizeHR648x648:
		return 648, 648
	default:
		return 48, 48
	}
}

// LegacyFreeBusyStatus is the availability of a calendar slot.
type LegacyFreeBusyStatus string

const (
	FreeBusyFree             LegacyFreeBusyStatus = "Free"
	FreeBusyTentative        LegacyFreeBusyStatus = "Tentative"
	FreeBusyBusy             LegacyFreeBusyStatus = "Busy"
	FreeBusyOOF              LegacyFreeBusyStatus = "OOF"
	FreeBusyWorkingElsewhere LegacyFreeBusyStatus = "WorkingElsewhere"
	FreeBusyNoData           LegacyFreeBusyStatus = "NoData"
)

// FreeBusyViewType is the level of detail of an availability view.
type FreeBusyViewType string

const (
	FreeBusyViewNone           FreeBusyViewType = "None"
	FreeBusyViewMergedOnly     FreeBusyViewType = "MergedOnly"
	FreeBusyViewFreeBusy       FreeBusyViewType = "FreeBusy"
	FreeBusyViewFreeBusyMerged FreeBusyViewType = "FreeBusyMerged"
	FreeBusyViewDetailed       FreeBusyViewType = "Detailed"
	FreeBusyViewDetailedMerged FreeBusyViewType = "DetailedMerged"
)

// MeetingAttendeeType is the role of an attendee in an availability query.
type MeetingAttendeeType string

const (
	AttendeeOrganizer MeetingAttendeeType = "Organizer"
	AttendeeRequired  MeetingAttendeeType = "Required"
	AttendeeOptional  MeetingAttendeeType = "Optional"
	AttendeeRoom      MeetingAttendeeType = "Room"
	AttendeeResource  MeetingAttendeeType = "Resource"
)

// SuggestionQuality rates a meeting-time suggestion.
type SuggestionQuality string

const (
	QualityExcellent SuggestionQuality = "Excellent"
	QualityGood      SuggestionQuality = "Good"
	QualityFair      SuggestionQuality = "Fair"
	QualityPoor      SuggestionQuality = "Poor"
)

// DayOfWeek as used in working-hours structures.
type DayOfWeek string

const (
	DaySunday     DayOfWeek = "Sunday"
	DayMonday     DayOfWeek = "Monday"
	DayTuesday    DayOfWeek = "Tuesday"
	DayWednesday  DayOfWeek = "Wednesday"
	DayThursday   DayOfWeek = "Thursday"
	DayFriday     DayOfWeek = "Friday"
	DaySaturday   DayOfWeek = "Saturday"
	DayDay        DayOfWeek = "Day"
	DayWeekday    DayOfWeek = "Weekday"
	DayWeekendDay DayOfWeek = "WeekendDay"
)

// MailboxType classifies a mailbox participant.
type MailboxType string

const (
	MailboxTypeMailbox      MailboxType = "Mailbox"
	MailboxTypePublicDL     MailboxType = "PublicDL"
	MailboxTypePrivateDL    MailboxType = "PrivateDL"
	MailboxTypeContact      MailboxType = "Contact"
	MailboxTypePublicFolder MailboxType = "PublicFolder"
	MailboxTypeUnknown      MailboxType = "Unknown"
	MailboxTypeOneOff       MailboxType = "OneOff"
	MailboxTypeGroupMailbox MailboxType = "GroupMailbox"
)

// RoutingTypeSMTP is the only routing type this service emits.
const RoutingTypeSMTP = "SMTP"
