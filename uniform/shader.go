package uniform

// WGSL is a point-light Phong shader that reads a [Block] bound as
// var<uniform> at group 0, binding 0. Vertex inputs are the position at
// location 0 and the normal at location 1.
const WGSL = `
struct Uniforms {
    mvp:            mat4x4<f32>,
    model:          mat4x4<f32>,
    model_inverse:  mat4x4<f32>,
    light_position: vec3<f32>,
    eye_direction:  vec3<f32>,
    ambient_color:  vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) normal: vec3<f32>,
    @location(1) light: vec3<f32>,
    @location(2) eye: vec3<f32>,
}

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) normal: vec3<f32>) -> VertexOutput {
    let world = u.model * vec4<f32>(position, 1.0);
    let to_light = vec4<f32>(u.light_position - world.xyz, 0.0);

    var out: VertexOutput;
    out.position = u.mvp * vec4<f32>(position, 1.0);
    out.normal = normal;
    out.light = (u.model_inverse * to_light).xyz;
    out.eye = (u.model_inverse * vec4<f32>(u.eye_direction, 0.0)).xyz;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let n = normalize(in.normal);
    let l = normalize(in.light);
    let h = normalize(l + normalize(in.eye));
    let diffuse = clamp(dot(n, l), 0.0, 1.0);
    let specular = pow(clamp(dot(n, h), 0.0, 1.0), 50.0);
    return vec4<f32>(vec3<f32>(diffuse + specular), 1.0) + u.ambient_color;
}
`
