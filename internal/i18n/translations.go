package i18n

import "lokma/internal/models"

// Translations holds every guest-facing string for one language.
type Translations struct {
	RestaurantName string
	StartOrder     string
	WelcomeMessage string

	SelectOrderType string
	Delivery        string
	DineIn          string
	Chatbot         string
	DeliveryAddress string
	PhoneNumber     string
	CustomerName    string
	TableNumber     string
	Continue        string
	Back            string

	Menu         string
	AddToOrder   string
	Quantity     string
	SpecialNotes string
	Price        string

	OrderSummary string
	Total        string
	ConfirmOrder string

	ThankYou        string
	OrderProcessing string
	OrderNumber     string
	NewOrder        string
	OrderStatus     string
	Refresh         string
	CancelOrder     string

	ChatbotTitle       string
	ChatbotWelcome     string
	ChatbotPlaceholder string
	Send               string

	Loading  string
	Error    string
	Required string

	Categories map[models.MenuCategory]string
	Statuses   map[models.OrderStatus]string
}

var en = Translations{
	RestaurantName: "Delicious Bites",
	StartOrder:     "Start Your Order",
	WelcomeMessage: "Welcome to our restaurant",

	SelectOrderType: "Select Order Type",
	Delivery:        "Delivery",
	DineIn:          "Dine In",
	Chatbot:         "Chat with AI Assistant",
	DeliveryAddress: "Delivery Address",
	PhoneNumber:     "Phone Number",
	CustomerName:    "Your Name",
	TableNumber:     "Table Number (Optional)",
	Continue:        "Continue",
	Back:            "Back",

	Menu:         "Menu",
	AddToOrder:   "Add to Order",
	Quantity:     "Quantity",
	SpecialNotes: "Special Notes",
	Price:        "$",

	OrderSummary: "Order Summary",
	Total:        "Total",
	ConfirmOrder: "Confirm Order",

	ThankYou:        "Thank You!",
	OrderProcessing: "Your order is being processed",
	OrderNumber:     "Order Number",
	NewOrder:        "Start New Order",
	OrderStatus:     "Order Status",
	Refresh:         "Refresh",
	CancelOrder:     "Cancel Order",

	ChatbotTitle:       "AI Assistant",
	ChatbotWelcome:     "Hi! I'm here to help you with your order. What would you like to eat today?",
	ChatbotPlaceholder: "Type your message here...",
	Send:               "Send",

	Loading:  "Loading...",
	Error:    "Error occurred",
	Required: "This field is required",

	Categories: map[models.MenuCategory]string{
		models.MenuCategoryAll:       "All",
		models.MenuCategoryBurgers:   "Burgers",
		models.MenuCategoryPizza:     "Pizza",
		models.MenuCategorySalads:    "Salads",
		models.MenuCategorySeafood:   "Seafood",
		models.MenuCategoryDesserts:  "Desserts",
		models.MenuCategoryBeverages: "Beverages",
	},
	Statuses: map[models.OrderStatus]string{
		models.StatusProcessing: "Processing",
		models.StatusPreparing:  "Preparing",
		models.StatusReady:      "Ready for pickup",
		models.StatusCompleted:  "Completed",
		models.StatusCancelled:  "Cancelled",
		models.StatusUnknown:    "Checking...",
	},
}

var ar = Translations{
	RestaurantName: "لقمة شهية",
	StartOrder:     "ابدأ طلبك",
	WelcomeMessage: "مرحباً بك في مطعمنا",

	SelectOrderType: "اختر نوع الطلب",
	Delivery:        "توصيل",
	DineIn:          "تناول في المطعم",
	Chatbot:         "المحادثة مع المساعد الذكي",
	DeliveryAddress: "عنوان التوصيل",
	PhoneNumber:     "رقم الهاتف",
	CustomerName:    "اسمك",
	TableNumber:     "رقم الطاولة (اختياري)",
	Continue:        "متابعة",
	Back:            "رجوع",

	Menu:         "القائمة",
	AddToOrder:   "إضافة للطلب",
	Quantity:     "الكمية",
	SpecialNotes: "ملاحظات خاصة",
	Price:        "ريال",

	OrderSummary: "ملخص الطلب",
	Total:        "المجموع",
	ConfirmOrder: "تأكيد الطلب",

	ThankYou:        "شكراً لك!",
	OrderProcessing: "جاري تحضير طلبك",
	OrderNumber:     "رقم الطلب",
	NewOrder:        "طلب جديد",
	OrderStatus:     "حالة الطلب",
	Refresh:         "تحديث",
	CancelOrder:     "إلغاء الطلب",

	ChatbotTitle:       "المساعد الذكي",
	ChatbotWelcome:     "مرحباً! أنا هنا لمساعدتك في طلبك. ماذا تريد أن تأكل اليوم؟",
	ChatbotPlaceholder: "اكتب رسالتك هنا...",
	Send:               "إرسال",

	Loading:  "جاري التحميل...",
	Error:    "حدث خطأ",
	Required: "هذا الحقل مطلوب",

	Categories: map[models.MenuCategory]string{
		models.MenuCategoryAll:       "الكل",
		models.MenuCategoryBurgers:   "ساندويتش",
		models.MenuCategoryPizza:     "بيتزا",
		models.MenuCategorySalads:    "سلطة",
		models.MenuCategorySeafood:   "مأكولات بحرية",
		models.MenuCategoryDesserts:  "حلويات",
		models.MenuCategoryBeverages: "مشروبات",
	},
	Statuses: map[models.OrderStatus]string{
		models.StatusProcessing: "قيد المعالجة",
		models.StatusPreparing:  "جاري التحضير",
		models.StatusReady:      "جاهز للاستلام",
		models.StatusCompleted:  "مكتمل",
		models.StatusCancelled:  "ملغي",
		models.StatusUnknown:    "جاري التحقق...",
	},
}

// For returns the string table for the language, defaulting to English.
func For(lang models.Language) Translations {
	if lang == models.LanguageAR {
		return ar
	}
	return en
}
