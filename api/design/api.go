package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("billiton", func() {
	Title("Billiton API")
	Description("Backend API for Billiton - diamond tokenisation platform lead intake")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// JWT Security
var JWTAuth = JWTSecurity("jwt", func() {
	Description("JWT authentication")
	Scope("admin", "Admin access")
	Scope("staff", "Staff access")
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Billiton API")
	})
})

// Consultation service
var _ = Service("consultation", func() {
	Description("Consultation request intake service")
	Error("unauthorized", func() {
		Description("Unauthorized access")
	})

	Method("submit", func() {
		Description("Submit a consultation request. Required fields are enforced by the client form; the server accepts the payload as-is.")
		Payload(ConsultationSubmitPayload)
		Result(ConsultationSubmitResult)
		HTTP(func() {
			POST("/api/v1/inquiries/consultation")
			Response(StatusOK)
		})
	})

	Method("list", func() {
		Description("List all consultation inquiries (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ListPayload)
		Result(ArrayOf(ConsultationInquiryResult))
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/inquiries/consultation")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var ConsultationSubmitPayload = Type("ConsultationSubmitPayload", func() {
	Attribute("firstName", String, "First name", func() {
		Default("")
		Example("Jane")
	})
	Attribute("lastName", String, "Last name", func() {
		Default("")
		Example("Doe")
	})
	Attribute("email", String, "Email address", func() {
		Default("")
		Example("jane@example.com")
	})
	Attribute("describesYou", String, "Self-description category", func() {
		Default("")
		Example("Investor")
	})
	Attribute("interestedIn", String, "Interest category", func() {
		Default("")
		Example("Tokenization")
	})
	Attribute("message", String, "Free-text message", func() {
		Default("")
	})
})

var ConsultationSubmitResult = ResultType("ConsultationSubmitResult", func() {
	Attribute("success", Boolean, "Whether the inquiry was captured")
	Attribute("id", String, "Inquiry ID")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Required("success", "id", "emailSent")
})

var ConsultationInquiryResult = ResultType("ConsultationInquiryResult", func() {
	Attribute("id", String, "Inquiry ID")
	Attribute("firstName", String, "First name")
	Attribute("lastName", String, "Last name")
	Attribute("email", String, "Email address")
	Attribute("describesYou", String, "Self-description category")
	Attribute("interestedIn", String, "Interest category")
	Attribute("message", String, "Free-text message")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Attribute("createdAt", String, "Creation timestamp")
	Required("id", "firstName", "lastName", "email", "describesYou", "interestedIn", "message", "emailSent", "createdAt")
})

// Asset owner service
var _ = Service("assetowner", func() {
	Description("Asset owner assessment request intake service")
	Error("unauthorized", func() {
		Description("Unauthorized access")
	})

	Method("submit", func() {
		Description("Submit an asset assessment request")
		Payload(AssetOwnerSubmitPayload)
		Result(AssetOwnerSubmitResult)
		HTTP(func() {
			POST("/api/v1/inquiries/asset-owner")
			Response(StatusOK)
		})
	})

	Method("list", func() {
		Description("List all asset owner inquiries (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ListPayload)
		Result(ArrayOf(AssetOwnerInquiryResult))
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/inquiries/asset-owner")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var AssetOwnerSubmitPayload = Type("AssetOwnerSubmitPayload", func() {
	Attribute("name", String, "Full name", func() {
		Default("")
	})
	Attribute("organisation", String, "Organisation", func() {
		Default("")
	})
	Attribute("role", String, "Role within the organisation", func() {
		Default("")
	})
	Attribute("email", String, "Email address", func() {
		Default("")
	})
	Attribute("inventoryValue", String, "Approximate inventory value (free text)", func() {
		Default("")
	})
	Attribute("description", String, "Holdings description", func() {
		Default("")
	})
})

var AssetOwnerSubmitResult = ResultType("AssetOwnerSubmitResult", func() {
	Attribute("success", Boolean, "Whether the inquiry was captured")
	Attribute("id", String, "Inquiry ID")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Required("success", "id", "emailSent")
})

var AssetOwnerInquiryResult = ResultType("AssetOwnerInquiryResult", func() {
	Attribute("id", String, "Inquiry ID")
	Attribute("name", String, "Full name")
	Attribute("organisation", String, "Organisation")
	Attribute("role", String, "Role within the organisation")
	Attribute("email", String, "Email address")
	Attribute("inventoryValue", String, "Approximate inventory value")
	Attribute("description", String, "Holdings description")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Attribute("createdAt", String, "Creation timestamp")
	Required("id", "name", "organisation", "role", "email", "inventoryValue", "description", "emailSent", "createdAt")
})

// Investor service
var _ = Service("investor", func() {
	Description("Investor interest registration service")
	Error("unauthorized", func() {
		Description("Unauthorized access")
	})

	Method("submit", func() {
		Description("Register investor interest")
		Payload(InvestorSubmitPayload)
		Result(InvestorSubmitResult)
		HTTP(func() {
			POST("/api/v1/inquiries/investor")
			Response(StatusOK)
		})
	})

	Method("list", func() {
		Description("List all investor inquiries (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ListPayload)
		Result(ArrayOf(InvestorInquiryResult))
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/inquiries/investor")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var InvestorSubmitPayload = Type("InvestorSubmitPayload", func() {
	Attribute("email", String, "Email address", func() {
		Default("")
	})
	Attribute("investorTypes", ArrayOf(String), "Investor type tags (may be empty)")
	Attribute("ticketSize", String, "Expected ticket size (free text)", func() {
		Default("")
	})
})

var InvestorSubmitResult = ResultType("InvestorSubmitResult", func() {
	Attribute("success", Boolean, "Whether the inquiry was captured")
	Attribute("id", String, "Inquiry ID")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Required("success", "id", "emailSent")
})

var InvestorInquiryResult = ResultType("InvestorInquiryResult", func() {
	Attribute("id", String, "Inquiry ID")
	Attribute("email", String, "Email address")
	Attribute("investorTypes", ArrayOf(String), "Investor type tags")
	Attribute("ticketSize", String, "Expected ticket size")
	Attribute("emailSent", Boolean, "Whether the notification email went out")
	Attribute("createdAt", String, "Creation timestamp")
	Required("id", "email", "ticketSize", "emailSent", "createdAt")
})

// Shared list payload for the staff-only inquiry listings
var ListPayload = Type("ListPayload", func() {
	Token("token", String, "JWT token")
	Attribute("skip", Int, "Skip records", func() {
		Default(0)
		Minimum(0)
	})
	Attribute("limit", Int, "Limit records", func() {
		Default(100)
		Minimum(1)
		Maximum(500)
	})
})

// Authentication service
var _ = Service("auth", func() {
	Description("Staff authentication service")
	Error("unauthorized", func() {
		Description("Unauthorized access")
	})

	Method("login", func() {
		Description("Authenticate staff user and return JWT token")
		Payload(LoginPayload)
		Result(LoginResult)
		Error("unauthorized")
		HTTP(func() {
			POST("/api/v1/auth/login")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("me", func() {
		Description("Get current user information")
		Security(JWTAuth)
		Payload(MePayload)
		Result(UserResult)
		Error("unauthorized")
		HTTP(func() {
			GET("/api/v1/auth/me")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

var LoginPayload = Type("LoginPayload", func() {
	Attribute("username", String, "Username", func() {
		MinLength(1)
		Example("admin")
	})
	Attribute("password", String, "Password", func() {
		MinLength(1)
		Example("password")
	})
	Required("username", "password")
})

var LoginResult = ResultType("LoginResult", func() {
	Attribute("access_token", String, "JWT access token")
	Attribute("token_type", String, "Token type", func() {
		Default("bearer")
		Example("bearer")
	})
	Required("access_token", "token_type")
})

var MePayload = Type("MePayload", func() {
	Token("token", String, "JWT token")
})

var UserResult = ResultType("UserResult", func() {
	Attribute("id", Int, "User ID")
	Attribute("username", String, "Username")
	Attribute("email", String, "Email address")
	Attribute("full_name", String, "Full name")
	Attribute("is_active", Boolean, "Is user active")
	Attribute("is_admin", Boolean, "Is user admin")
	Attribute("is_staff", Boolean, "Is user staff")
	Attribute("created_at", String, "Creation timestamp")
	Attribute("last_login", String, "Last login timestamp")
	Required("id", "username", "email", "is_active", "is_admin", "is_staff", "created_at")
})
