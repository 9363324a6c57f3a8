// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

// Shader sources for the still life.
// The fragment stage does per-pixel Phong shading with one
// directional light plus up to four point lights, either
// sampling the object texture (scaled by UVscale) or using
// the flat object color.

const vertexSrc = `#version 410 core

layout(location = 0) in vec3 vertexPosition;
layout(location = 1) in vec3 vertexNormal;
layout(location = 2) in vec2 vertexTexCoord;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	vec4 world = model * vec4(vertexPosition, 1.0);
	fragmentPosition = world.xyz;
	fragmentNormal = mat3(transpose(inverse(model))) * vertexNormal;
	fragmentTexCoord = vertexTexCoord;
	gl_Position = projection * view * world;
}
`

const fragmentSrc = `#version 410 core

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct DirectionalLight {
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct PointLight {
	vec3 position;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

#define POINT_LIGHTS 4

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentTexCoord;

out vec4 outColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[POINT_LIGHTS];

vec3 shadeDirectional(vec3 normal, vec3 viewDir) {
	vec3 lightDir = normalize(-directionalLight.direction);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	vec3 ambient = directionalLight.ambient * material.ambientColor * material.ambientStrength;
	vec3 diffuse = directionalLight.diffuse * diff * material.diffuseColor;
	vec3 specular = directionalLight.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

vec3 shadePoint(PointLight light, vec3 normal, vec3 viewDir) {
	vec3 lightDir = normalize(light.position - fragmentPosition);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	vec3 ambient = light.ambient * material.ambientColor * material.ambientStrength;
	vec3 diffuse = light.diffuse * diff * material.diffuseColor;
	vec3 specular = light.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

void main() {
	vec4 base;
	if (bUseTexture) {
		base = texture(objectTexture, fragmentTexCoord * UVscale);
	} else {
		base = objectColor;
	}
	if (!bUseLighting) {
		outColor = base;
		return;
	}
	vec3 normal = normalize(fragmentNormal);
	vec3 viewDir = normalize(viewPosition - fragmentPosition);
	vec3 shade = vec3(0.0);
	if (directionalLight.bActive) {
		shade += shadeDirectional(normal, viewDir);
	}
	for (int i = 0; i < POINT_LIGHTS; i++) {
		if (pointLights[i].bActive) {
			shade += shadePoint(pointLights[i], normal, viewDir);
		}
	}
	outColor = vec4(shade, 1.0) * base;
}
`
