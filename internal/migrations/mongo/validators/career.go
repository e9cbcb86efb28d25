package validators

import "go.mongodb.org/mongo-driver/bson"

var CareerValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"id",
			"jobTitle",
			"description",
			"location",
			"workSetup",
			"orgID",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 120,
			},

			"jobTitle": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 150,
			},

			"description": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 20000,
			},

			"questions": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"preScreeningQuestions": bson.M{
				"bsonType": "array",
				"maxItems": 25,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"id", "key", "title", "type"},
				},
			},

			"location": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 300,
			},

			"workSetup": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"workSetupRemarks": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"salaryNegotiable": bson.M{
				"bsonType": "bool",
			},

			"minimumSalary": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"maximumSalary": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"status": bson.M{
				"enum": []string{"active", "inactive"},
			},

			"orgID": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},

			"lastActivityAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
