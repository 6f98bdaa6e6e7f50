package profilexml

// Current schema version written on every save.
const Version = 3

// Element and attribute names of the current document format.
const (
	nameProfile = "profile"
	nameVersion = "version"

	nameAccountID = "steam_id_64"

	nameAutoUpdate           = "auto_update"
	nameAutoImport           = "auto_import"
	nameAutoExport           = "auto_export"
	nameLocalUpdate          = "local_update"
	nameWebUpdate            = "web_update"
	nameExportDiscard        = "export_discard"
	nameAutoIgnore           = "auto_ignore"
	nameIncludeUnknown       = "include_unknown"
	nameBypassIgnoreOnImport = "bypass_ignore_on_import"
	nameOverwriteNames       = "overwrite_names"
	nameIncludeShortcuts     = "include_shortcuts"

	nameGameList       = "games"
	nameGame           = "game"
	nameGameID         = "id"
	nameGameSource     = "source"
	nameGameName       = "name"
	nameGameHidden     = "hidden"
	nameGameLastPlayed = "lastplayed"
	nameGameExecutable = "executable"
	nameCategoryList   = "categories"
	nameCategory       = "category"

	nameFilterList          = "Filters"
	nameFilter              = "Filter"
	nameFilterName          = "Name"
	nameFilterGame          = "Game"
	nameFilterHidden        = "Hidden"
	nameFilterSoftware      = "Software"
	nameFilterUncategorized = "Uncategorized"
	nameFilterVR            = "VR"
	nameFilterAllow         = "Allow"
	nameFilterRequire       = "Require"
	nameFilterExclude       = "Exclude"

	nameAutoCatList = "autocats"

	nameExclusionList = "exclusions"
	nameExclusion     = "exclusion"
)

// Legacy names still honored on decode.
const (
	nameOldAccountID      = "account_id"      // short directory-name ID, pre-version-1
	nameOldAutoDownload   = "auto_download"   // auto_update before version 3
	nameOldIgnoreExternal = "ignore_external" // inverted include_shortcuts before version 2
	nameOldFavorite       = "favorite"        // per-game favorite flag before version 1
)
