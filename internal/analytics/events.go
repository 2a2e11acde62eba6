package analytics

// Event names forwarded to the product-analytics collaborator. Kept as a
// single catalog so call sites never drift on spelling.
const (
	EventNavigationClicked     = "navigation_clicked"
	EventSectionViewed         = "section_viewed"
	EventProjectClicked        = "project_clicked"
	EventProjectLinkClicked    = "project_link_clicked"
	EventContactFormOpened     = "contact_form_opened"
	EventContactFormSubmitted  = "contact_form_submitted"
	EventSocialLinkClicked     = "social_link_clicked"
	EventScrollDepth           = "scroll_depth"
	EventPricingCTAClicked     = "pricing_cta_clicked"
	EventFAQToggled            = "faq_toggled"
	EventPackageSelected       = "package_selected"
	EventAddOnSelected         = "addon_selected"
	EventAddOnRemoved          = "addon_removed"
	EventServiceOrderSubmitted = "service_order_submitted"
)
